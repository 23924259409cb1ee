// Package imaging provides the image I/O surface shared by the tool
// handlers: a thread-safe decode cache, grayscale conversion, and PNG
// encoding helpers.
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner. The core analysis packages (threshold, crop) never touch
// files; everything that reads or writes an image lives here.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and encoding
// functions are stateless and can be called concurrently on different
// images.
package imaging
