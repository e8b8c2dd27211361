package analyze

// StdlibNamespaces are the top-level import paths of the Go standard library.
// They are the default framework namespaces when the Go introspector is used.
var StdlibNamespaces = []string{
	"archive", "bufio", "bytes", "cmp", "compress", "container", "context",
	"crypto", "database", "debug", "embed", "encoding", "errors", "expvar",
	"flag", "fmt", "go", "hash", "html", "image", "index", "internal", "io",
	"iter", "log", "maps", "math", "mime", "net", "os", "path", "plugin",
	"reflect", "regexp", "runtime", "slices", "sort", "strconv", "strings",
	"structs", "sync", "syscall", "testing", "text", "time", "unicode",
	"unique", "unsafe", "weak",
}
