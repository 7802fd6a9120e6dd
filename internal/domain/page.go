package domain

import "encoding/json"

type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Page is the {data, meta} envelope returned by paginated listings.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage assembles the envelope. TotalPages is ceil(total/limit) and stays 0
// for an empty result set.
func NewPage[T any](data []T, total, page, limit int) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page[T]{
		Data: data,
		Meta: PageMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	}
}

// DecodeList accepts either of the two list shapes older clients and
// endpoints trade in: a bare JSON array, or a {data, meta} envelope. A bare
// array yields zero-valued meta.
func DecodeList[T any](raw []byte) (Page[T], error) {
	trimmed := firstNonSpace(raw)
	if trimmed == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Data: items}, nil
	}
	var page Page[T]
	if err := json.Unmarshal(raw, &page); err != nil {
		return Page[T]{}, err
	}
	return page, nil
}

func firstNonSpace(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
