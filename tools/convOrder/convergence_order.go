package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/notargets/fluxlab/convergence"
)

var (
	csvFile   string
	delimiter = "|"
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	delimPtr := flag.String("delimiter", delimiter, "column delimiter of the printed tables")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies, err := readCSV(csvFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	delim := ' '
	if len(*delimPtr) != 0 {
		delim = []rune(*delimPtr)[0]
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, cs := range studies {
		fmt.Fprintf(w, "Title = %s, Order = %d\n", cs.Title, cs.Order)
		if err = cs.WriteTable(w, delim); err != nil {
			fmt.Fprintf(w, "error: %s\n\n", err.Error())
		}
	}
}

func readCSV(csvFile string) (studies []*convergence.Study, err error) {
	var (
		f *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	return convergence.ReadStudyCSV(f)
}
