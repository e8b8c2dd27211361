package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits a qualified type name like "net/http.Client" into
// its package path and type name. The package path is empty for
// unqualified names.
func SplitQualified(name string) (pkgPath, typeName string) {
	slash := strings.LastIndex(name, "/")

	dot := strings.LastIndex(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}

	dot += slash + 1

	return name[:dot], name[dot+1:]
}

// Qualify joins a package path and a type name.
func Qualify(pkgPath, typeName string) string {
	if pkgPath == "" {
		return typeName
	}

	return pkgPath + "." + typeName
}
