package workload

import (
	"io"
	"os"

	"github.com/companion-uyan/data-structure-algorithm/errors"
	"gopkg.in/yaml.v3"
)

// File is the layout of a workload file:
//
//	workloads:
//	  - name: ascending
//	    variant: avl
//	    keys: {from: 0, to: 29}
//	    delete: [15]
//	    orders: [inorder, levelorder]
type File struct {
	Workloads []Workload `yaml:"workloads"`
}

// Load decodes the workloads of a yaml document. Unknown fields
// are rejected so that a misspelled option is not silently ignored
func Load(r io.Reader) ([]Workload, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, errors.New(errors.ErrCodeInvalidWorkload,
			"failed to decode workloads: %s", err.Error())
	}

	for i := range file.Workloads {
		if _, err := file.Workloads[i].plan(); err != nil {
			return nil, err
		}
	}

	return file.Workloads, nil
}

// LoadFile reads the workloads of the yaml file at path
func LoadFile(path string) ([]Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
