// Command llrb exercise the llrb package from command line.
//
//	llrb load  [options]  - load random keys and report statistics.
//	llrb check [options]  - cross check llrb with reference dict.
package main

import "flag"
import "fmt"
import "os"
import "runtime"
import "runtime/pprof"

import "github.com/bnclabs/golog"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	setts := map[string]interface{}{
		"log.level":      "info",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "load":
		err = doLoad(args)
	case "check":
		err = doCheck(args)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("%v: %v\n", os.Args[1], err)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: llrb load|check [options]\n")
}

func setCPU(n int) {
	runtime.GOMAXPROCS(n)
}

func takeMEMProfile(filename string) bool {
	if filename == "" {
		return false
	}
	fd, err := os.Create(filename)
	if err != nil {
		log.Errorf("unable to create %q: %v\n", filename, err)
		return false
	}
	defer fd.Close()
	pprof.WriteHeapProfile(fd)
	return true
}
