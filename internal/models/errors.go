package models

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDocumentRead = errors.New("document read error")
	ErrModelCall    = errors.New("model call error")
	ErrParse        = errors.New("parse error")
	ErrRender       = errors.New("render error")
)
