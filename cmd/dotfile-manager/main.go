package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lgulich/dotfile-manager/pkg/errors"
	"github.com/lgulich/dotfile-manager/pkg/style"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdin, stdout, stderr)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// printError renders err in the error style, followed by the details a
// DotfileError carries.
func printError(w io.Writer, err error) {
	styles := style.New(style.NewRenderer(w, style.ColorEnabled(w)))
	_, _ = fmt.Fprintln(w, styles.Error.Render(fmt.Sprintf(MsgErrorFormat, err)))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, MsgErrorDetail, styles.Muted.Render(k), details[k])
	}
}
