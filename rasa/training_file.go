package rasa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

// Load reads a JSON training file from the given reader.
func Load(r io.Reader) (*TrainingSet, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	ms, err := decodeObject(src)
	if err != nil {
		return nil, fmt.Errorf("invalid training file: %w", err)
	}
	ret := &TrainingSet{}
	if err := ret.setMembers(ms); err != nil {
		return nil, err
	}
	ret.normalize()
	return ret, nil
}

// LoadFile is like Load but it first opens the given filename and then reads
// data from it. A missing file is reported as an error satisfying
// os.IsNotExist.
func LoadFile(filename string) (*TrainingSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadOrCreateFile is like LoadFile except that a missing file is not an
// error: a new, empty training set is returned instead and created is true,
// so the caller can let the user know that it is starting from nothing.
func LoadOrCreateFile(filename string) (ts *TrainingSet, created bool, err error) {
	ts, err = LoadFile(filename)
	if os.IsNotExist(err) {
		return NewTrainingSet(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return ts, false, nil
}

// Marshal returns the JSON serialization of the training set, indented by
// four spaces per level and terminated by a newline.
func (ts *TrainingSet) Marshal() ([]byte, error) {
	ts.normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	// Training phrases are free text, and "&" or "<" in them should appear
	// literally in the file.
	enc.SetEscapeHTML(false)
	err := enc.Encode(ts)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the complete training set to the given writer in the same
// format that Load expects.
func (ts *TrainingSet) Save(w io.Writer) error {
	src, err := ts.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// SaveFile replaces the given file with the complete training set. The data
// is first written to a temporary file alongside the destination which is
// then renamed into place, so a failure part way through leaves any
// existing file untouched.
func (ts *TrainingSet) SaveFile(filename string) error {
	src, err := ts.Marshal()
	if err != nil {
		return err
	}

	dir, base := filepath.Split(filename)
	tempName := filepath.Join(dir, "."+base+".new")
	f, err := os.Create(tempName)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tempName, err)
	}
	_, err = f.Write(src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempName)
		return fmt.Errorf("failed to write %s: %w", tempName, err)
	}

	err = os.Rename(tempName, filename)
	if err != nil {
		os.Remove(tempName)
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
