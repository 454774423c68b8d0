// pwclean converts a pwSafe tab-separated export into a cleaned CSV suitable
// for import into another password manager. One pass, one input flag, output
// under output/output.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"pwclean/internal/pipeline"
)

func main() {
	input := flag.String("input", "", "path to the pwSafe export (default pwsafe.txt)")
	flag.Parse()

	if _, err := pipeline.Run(context.Background(), pipeline.Options{Input: *input}); err != nil {
		fatalf("pwclean: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
