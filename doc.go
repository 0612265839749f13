// Package textstore provides a minimal line-oriented text file store with
// a whitelist filename policy.
//
// Text is appended as new lines to a fixed target file and any valid text
// file in the storage directory can be read back in full. There is no
// metadata, indexing or locking: a file is created on first append and only
// ever grows.
//
// # Key Components
//
//   - TextService: Validates input and delegates to a FileStorage
//   - FileStorage: Interface for append/read/exists (see the filesystem package)
//   - IsValidFilename: The filename policy shared by reads, writes and config
//
// # Filename Policy
//
// A filename is accepted only if it ends in ".txt", contains no "..", "/" or
// "\", and is made of ASCII letters, digits, '_', '-' and '.'.
//
// # Example Usage
//
//	storage := filesystem.NewFileStorage("./data")
//	service, err := textstore.NewTextService(storage, textstore.DefaultWriteFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Append a line to file.txt
//	res, err := service.Append(ctx, "hello")
//
//	// Read a file back
//	obj, err := service.Read(ctx, "file.txt")
//	if err == nil && !obj.Found {
//	    // file.txt does not exist
//	}
//
// See the http package for the REST API and the filesystem package for the
// storage backend.
package textstore
