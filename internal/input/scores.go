// Package input decodes student score payloads while keeping the order the
// subjects appear in, which decides how equal scores are ranked.
package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/godilite/score-report/internal/service"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned for payloads that are not a score document.
var ErrMalformed = errors.New("malformed score payload")

// ParseScores accepts either a subject-to-score object
//
//	{"數學": 85, "國語文": 70}
//
// or a list of pairs
//
//	[{"subject": "數學", "score": 85}]
//
// optionally wrapped as {"scores": ...}. Range and duplicate checks are left
// to the report builder.
func ParseScores(data []byte) ([]service.SubjectScore, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	root := gjson.ParseBytes(data)
	if wrapped := root.Get("scores"); root.IsObject() && (wrapped.IsObject() || wrapped.IsArray()) {
		if n := countKeys(root); n > 1 {
			return nil, fmt.Errorf("%w: \"scores\" must be the only key, found %d more", ErrMalformed, n-1)
		}
		root = wrapped
	}

	switch {
	case root.IsObject():
		return parseObject(root)
	case root.IsArray():
		return parseArray(root)
	default:
		return nil, fmt.Errorf("%w: expected an object or an array, got %s", ErrMalformed, root.Type)
	}
}

// ReadScores reads r to the end and parses it with ParseScores.
func ReadScores(r io.Reader) ([]service.SubjectScore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	return ParseScores(data)
}

func countKeys(obj gjson.Result) int {
	n := 0
	obj.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}

func parseObject(obj gjson.Result) ([]service.SubjectScore, error) {
	var (
		scores []service.SubjectScore
		err    error
	)
	obj.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("%w: score for %q is %s, not a number", ErrMalformed, key.String(), value.Type)
			return false
		}
		scores = append(scores, service.SubjectScore{Subject: key.String(), Score: value.Float()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func parseArray(arr gjson.Result) ([]service.SubjectScore, error) {
	var (
		scores []service.SubjectScore
		err    error
	)
	i := 0
	arr.ForEach(func(_, item gjson.Result) bool {
		subject, score := item.Get("subject"), item.Get("score")
		switch {
		case !item.IsObject():
			err = fmt.Errorf("%w: entry %d is %s, not an object", ErrMalformed, i, item.Type)
		case subject.Type != gjson.String:
			err = fmt.Errorf("%w: entry %d has no subject string", ErrMalformed, i)
		case score.Type != gjson.Number:
			err = fmt.Errorf("%w: entry %d (%q) has no numeric score", ErrMalformed, i, subject.String())
		}
		if err != nil {
			return false
		}
		scores = append(scores, service.SubjectScore{Subject: subject.String(), Score: score.Float()})
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}
