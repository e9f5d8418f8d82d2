package solutiontest

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var inputName = regexp.MustCompile(`(^|/)testdata/in\d+\.txt$`)

// Fixture is one input file and the file holding its expected output.
type Fixture struct {
	Name    string // "in1" for testdata/in1.txt
	InPath  string
	OutPath string
}

// Fixtures walks root and returns every testdata/inN.txt sorted by path. The
// paired output file is not required to exist.
func Fixtures(root string) ([]Fixture, error) {
	var found []Fixture
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !inputName.MatchString(filepath.ToSlash(path)) {
			return nil
		}
		dir, base := filepath.Split(path)
		found = append(found, Fixture{
			Name:    strings.TrimSuffix(base, ".txt"),
			InPath:  path,
			OutPath: filepath.Join(dir, "out"+strings.TrimPrefix(base, "in")),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", root)
	}
	slices.SortFunc(found, func(a, b Fixture) int { return strings.Compare(a.InPath, b.InPath) })

	return found, nil
}
