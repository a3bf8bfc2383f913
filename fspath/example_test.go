package fspath_test

import (
	"fmt"

	"github.com/jmgilman/go/pathfs/fspath"
)

func ExamplePath_WithExtension() {
	for _, name := range []string{"dir/baz", "dir/baz.", "dir/baz.xz"} {
		fmt.Println(fspath.FromText(name).WithExtension("txt"))
	}
	// Output:
	// dir/baz.txt
	// dir/baz.txt
	// dir/baz.txt
}

func ExamplePath_Bytes() {
	_, err := fspath.FromBytes([]byte("bad\x00name")).Bytes()
	fmt.Println(err)
	// Output:
	// path contains NUL byte at offset 3
}
