package pathutil_test

import (
	"errors"
	"fmt"

	"github.com/dendrascience/gitpath/pathutil"
)

func ExampleSplit() {
	fmt.Println(pathutil.Split("a/b/c.txt", pathutil.SplitPathFile))
	fmt.Println(pathutil.Split("a/b/c.txt", pathutil.SplitExt|pathutil.SplitExtNoPeriod))
	fmt.Println(pathutil.Split(".gitignore", pathutil.SplitFile))
	// Output:
	// a/b/c
	// txt
	// .gitignore
}

func ExampleSplitInto() {
	buf := make([]byte, 4)
	_, err := pathutil.SplitInto(buf, "a/b/c.txt", pathutil.SplitPathFile)

	var tooSmall *pathutil.BufferTooSmallError
	if errors.As(err, &tooSmall) {
		buf = make([]byte, tooSmall.Required)
	}
	n, _ := pathutil.SplitInto(buf, "a/b/c.txt", pathutil.SplitPathFile)
	fmt.Println(string(buf[:n]))
	// Output: a/b/c
}

func ExampleJoin() {
	fmt.Println(pathutil.Join("a/", "/b"))
	fmt.Println(pathutil.Join("a", ""))
	// Output:
	// a/b
	// a/
}
