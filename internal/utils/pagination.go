// Package utils holds small parsing helpers shared by handlers and services.
package utils

import (
	"strconv"
	"strings"
)

// MaxPageNumber bounds Page.Number so Offset cannot overflow.
const MaxPageNumber = 1_000_000

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads raw page and page-size query values. Blank or malformed
// values take the defaults (page 1, defSize). The size is capped at maxSize
// when maxSize is positive, and the page at MaxPageNumber.
func ParsePage(number, size string, defSize, maxSize int) Page {
	p := Page{Number: intOr(number, 1), Size: intOr(size, defSize)}.Normalize(defSize)
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Normalize clamps the page number to [1, MaxPageNumber] and moves a size
// below 1 to defSize.
func (p Page) Normalize(defSize int) Page {
	switch {
	case p.Number < 1:
		p.Number = 1
	case p.Number > MaxPageNumber:
		p.Number = MaxPageNumber
	}
	if p.Size < 1 {
		p.Size = defSize
	}
	return p
}

// Offset is the number of rows before the page.
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

func intOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
