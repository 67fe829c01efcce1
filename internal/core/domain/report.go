package domain

import "time"

// Line is one line of an input file, as UTF-16 code units. Units are kept
// raw so that unpaired surrogates in UTF-16 inputs survive.
type Line struct {
	Number int
	Units  []uint16
}

// LineReport describes the string built from one input line.
type LineReport struct {
	Line       int    `json:"line"`
	Length     int    `json:"length"`
	ASCII      bool   `json:"ascii"`
	Static     bool   `json:"static"`
	Hash       string `json:"hash"`
	CodePoints int    `json:"code_points"`
	Unpaired   int    `json:"unpaired,omitempty"`
	Number     string `json:"number"`
	Trimmed    string `json:"trimmed"`
	Escaped    string `json:"escaped"`
}

// FileReport is the analysis of one input file. Reports are cached by path
// and reused while the digest matches.
type FileReport struct {
	Path      string       `json:"path"`
	Digest    string       `json:"digest"`
	Encoding  Encoding     `json:"encoding"`
	Lines     []LineReport `json:"lines"`
	Timestamp time.Time    `json:"timestamp"`
	Status    FileStatus   `json:"-"`
}

// Summary aggregates the line reports of a file.
type Summary struct {
	Lines    int `json:"lines"`
	ASCII    int `json:"ascii"`
	Static   int `json:"static"`
	Unpaired int `json:"unpaired"`
	Numeric  int `json:"numeric"`
}

// Summarize aggregates the lines of r.
func (r *FileReport) Summarize() Summary {
	var s Summary
	for _, l := range r.Lines {
		s.Lines++
		if l.ASCII {
			s.ASCII++
		}
		if l.Static {
			s.Static++
		}
		s.Unpaired += l.Unpaired
		if l.Number != "NaN" {
			s.Numeric++
		}
	}
	return s
}
