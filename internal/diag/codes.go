package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnrecognizedChar    Code = 1001
	LexOutOfInput          Code = 1002
	LexInvalidContinuation Code = 1003
	LexInvalidNumber       Code = 1004

	// I/O
	IOLoadFileError  Code = 4001
	IOCacheReadError Code = 4002

	// Проектные (lambdalex.toml)
	ProjInvalidConfig Code = 5001

	// Наблюдаемость
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnrecognizedChar:    "Unrecognized character",
	LexOutOfInput:          "Unexpected end of input",
	LexInvalidContinuation: "Invalid operator continuation",
	LexInvalidNumber:       "Invalid numeric literal",
	IOLoadFileError:        "I/O load file error",
	IOCacheReadError:       "Token cache read error",
	ProjInvalidConfig:      "Invalid project configuration",
	ObsTimings:             "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
