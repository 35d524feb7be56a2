// Package inspect implements a small REPL for browsing an already-emitted
// fanxpy output tree: list pods, list a pod's types, and print a type's
// emitted source or reflection registration block. It is a debugging aid
// over the filesystem, not part of the core emission path (spec.md §4.8
// describes the tree it browses). Grounded on the teacher's
// internal/repl.REPL command loop (internal/repl/repl.go), stripped down
// to a filesystem browser instead of a language evaluator.
package inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Run starts the interactive REPL over outDir, which must contain a
// `fan/<pod>/...` tree as written by poddriver.Driver.EmitPod.
func Run(outDir string) error {
	fanDir := filepath.Join(outDir, "fan")
	if info, err := os.Stat(fanDir); err != nil || !info.IsDir() {
		return fmt.Errorf("no fan/ tree under %s (emit a pod first)", outDir)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)
	line.SetCompleter(func(in string) (c []string) {
		for _, cmd := range []string{":pods", ":types", ":show", ":reflect", ":help", ":quit"} {
			if strings.HasPrefix(cmd, in) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Println(bold("fanxpy inspect"), dim(fanDir))
	fmt.Println(dim("Type :help for commands, :quit to exit"))

	currentPod := ""
	for {
		prompt := "fanxpy> "
		if currentPod != "" {
			prompt = fmt.Sprintf("fanxpy(%s)> ", currentPod)
		}
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Println(green("\nGoodbye!"))
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case ":quit", ":q", ":exit":
			fmt.Println(green("Goodbye!"))
			return nil
		case ":help":
			printHelp()
		case ":pods":
			printPods(fanDir)
		case ":use":
			if len(fields) < 2 {
				fmt.Println(red("usage: :use <pod>"))
				continue
			}
			currentPod = fields[1]
		case ":types":
			pod := currentPod
			if len(fields) >= 2 {
				pod = fields[1]
			}
			printTypes(fanDir, pod)
		case ":show":
			if len(fields) < 2 {
				fmt.Println(red("usage: :show <Type>"))
				continue
			}
			printSource(fanDir, currentPod, fields[1], false)
		case ":reflect":
			if len(fields) < 2 {
				fmt.Println(red("usage: :reflect <Type>"))
				continue
			}
			printSource(fanDir, currentPod, fields[1], true)
		default:
			fmt.Printf("%s: unknown command %q (try :help)\n", red("error"), fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(bold("Commands:"))
	fmt.Println("  :pods              list emitted pods")
	fmt.Println("  :use <pod>         select the current pod")
	fmt.Println("  :types [pod]       list types in a pod (default: current)")
	fmt.Println("  :show <Type>       print a type's emitted source")
	fmt.Println("  :reflect <Type>    print just its reflection registration block")
	fmt.Println("  :quit              exit")
}

func printPods(fanDir string) {
	entries, err := os.ReadDir(fanDir)
	if err != nil {
		fmt.Printf("%s: %v\n", red("error"), err)
		return
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(" ", cyan(n))
	}
}

func printTypes(fanDir, pod string) {
	if pod == "" {
		fmt.Println(red("error"), ": no pod selected (use :use <pod> or :types <pod>)")
		return
	}
	entries, err := os.ReadDir(filepath.Join(fanDir, pod))
	if err != nil {
		fmt.Printf("%s: %v\n", red("error"), err)
		return
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".py") && e.Name() != "__init__.py" {
			names = append(names, strings.TrimSuffix(e.Name(), ".py"))
		}
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(" ", cyan(n))
	}
}

func printSource(fanDir, pod, typeName string, reflectOnly bool) {
	if pod == "" {
		fmt.Println(red("error"), ": no pod selected (use :use <pod>)")
		return
	}
	path := filepath.Join(fanDir, pod, typeName+".py")
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: %v\n", red("error"), err)
		return
	}
	text := string(data)
	if reflectOnly {
		if idx := strings.Index(text, "_t = Type.find("); idx >= 0 {
			text = text[idx:]
		}
	}
	fmt.Println(text)
}
