package fsops

// One capability interface per concern. Operations implements all of them;
// consumers that only need one concern depend on the narrow interface.

// Reader reads file contents and checksums.
type Reader interface {
	ReadText(path PathInput, encoding Encoding) ReadResult[string]
	ReadBinary(path PathInput) ReadResult[[]byte]
	Checksum(path PathInput, algorithm string) ChecksumResult
}

// Writer writes, copies, moves and deletes files and directories.
type Writer interface {
	WriteText(path PathInput, content string, opts WriteOptions) WriteResult
	WriteBinary(path PathInput, content []byte, opts WriteOptions) WriteResult
	Copy(src, dst PathInput, overwrite bool) WriteResult
	Move(src, dst PathInput, overwrite bool) WriteResult
	Delete(path PathInput, missingOK bool) OperationResult
	CreateDirectory(path PathInput, existOK bool) OperationResult
}

// Informer produces metadata snapshots.
type Informer interface {
	GetFileInfo(path PathInput) FileInfoResult
}

// Lister produces directory listing snapshots.
type Lister interface {
	ListDirectory(path PathInput, opts ListOptions) DirectoryInfoResult
}

// Finder searches directories by name pattern.
type Finder interface {
	FindFiles(root PathInput, pattern string, opts FindOptions) FindResult
}

// Serializer reads and writes structured YAML/JSON documents.
type Serializer interface {
	ReadYAML(path PathInput) DataResult
	WriteYAML(path PathInput, data map[string]any, atomic bool) WriteResult
	ReadJSON(path PathInput) DataResult
	WriteJSON(path PathInput, data map[string]any, opts JSONOptions) WriteResult
}

// FileSystem composes every capability of the operation layer.
type FileSystem interface {
	Reader
	Writer
	Informer
	Lister
	Finder
	Serializer
}

var _ FileSystem = (*Operations)(nil)
