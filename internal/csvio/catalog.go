package csvio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhyrak/go-studyplan/pkg/model"
)

const instructorKey = "Instructor"

// ReadCatalog parses an offered-course browser export. The document is an object
// keyed "CODE-TYPE-SECTION"; each value maps day keys to time ranges and holds the
// instructor under "Instructor". Key order is kept since it is the catalog order.
func ReadCatalog(in io.Reader) ([]*model.OfferedSection, error) {
	dec := json.NewDecoder(in)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var sections []*model.OfferedSection
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(key, "-")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: catalog key %q is not CODE-TYPE-SECTION", ErrMalformedRecord, key)
		}
		s := &model.OfferedSection{
			CourseCode: strings.TrimSpace(parts[0]),
			CourseType: strings.TrimSpace(parts[1]),
			Section:    strings.TrimSpace(parts[2]),
		}
		if err := readSectionBody(dec, s); err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", key, err)
		}
		sections = append(sections, s)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return sections, nil
}

func readSectionBody(dec *json.Decoder, s *model.OfferedSection) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return err
		}
		var value *string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%w: value of %q: %v", ErrMalformedRecord, key, err)
		}
		if value == nil {
			continue
		}
		if key == instructorKey {
			s.Instructor = *value
			continue
		}
		m, err := model.ParseMeeting(key, *value)
		if err != nil {
			return err
		}
		s.Meetings = append(s.Meetings, m)
	}
	return expectDelim(dec, '}')
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrMalformedRecord, tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformedRecord, want, tok)
	}
	return nil
}

// LoadCatalog reads one catalog file. An empty path yields an empty catalog.
func LoadCatalog(path string) ([]*model.OfferedSection, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	sections, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return sections, nil
}

// LoadCatalogs reads the first, second and summer catalogs.
func LoadCatalogs(first, second, summer string) (*model.Catalog, error) {
	var c model.Catalog
	var err error
	if c.First, err = LoadCatalog(first); err != nil {
		return nil, err
	}
	if c.Second, err = LoadCatalog(second); err != nil {
		return nil, err
	}
	if c.Summer, err = LoadCatalog(summer); err != nil {
		return nil, err
	}
	return &c, nil
}
