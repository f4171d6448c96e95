package document

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/kellerb/depot"
)

// documentExt is the file extension identifying order confirmations.
const documentExt = ".pdf"

// ScanDirectory returns the confirmation documents found in dir, sorted by
// file name.
func ScanDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", depot.ErrPathNotFound, dir)
		}
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), documentExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %q", depot.ErrNoDocumentsFound, documentExt, dir)
	}
	sort.Strings(files)
	return files, nil
}

// ParseDirectory extracts one raw order per confirmation document in dir.
// Documents are independent, so extraction runs on a bounded worker pool
// (workers <= 0 selects NumCPU); results are collected by input index and
// sorted by execution date, so the output never depends on completion order.
//
// A single malformed document fails the whole run; there is no partial
// success.
func ParseDirectory(dir string, workers int) ([]depot.Order, error) {
	files, err := ScanDirectory(dir)
	if err != nil {
		return nil, err
	}
	return parseFiles(files, workers, ExtractText)
}

func parseFiles(files []string, workers int, extract func(string) ([]string, error)) ([]depot.Order, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	orders := make([]depot.Order, len(files))
	errs := make([]error, len(files))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			lines, err := extract(file)
			if err != nil {
				errs[i] = err
				return
			}
			orders[i], errs[i] = ParseOrder(filepath.Base(file), lines)
		}(i, file)
	}
	wg.Wait()

	// Surface the first failure in input order, to keep error output stable.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Day.Before(orders[j].Day) })
	log.Printf("parsed %d order confirmations", len(orders))
	return orders, nil
}
