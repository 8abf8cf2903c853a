// Package report composes engine outputs into a uniform sectioned report
// model. The model is plain structured data: binary layout is the concern of
// an external renderer consuming it.
package report

import (
	"time"

	"orbita/pkg/domain"
)

// Kind selects the fixed section order of a report.
type Kind string

const (
	KindAnnual            Kind = "annual_compliance"
	KindIncident          Kind = "incident"
	KindSignificantChange Kind = "significant_change"
	KindUnifiedProfile    Kind = "unified_profile"
)

var validKinds = map[Kind]bool{
	KindAnnual:            true,
	KindIncident:          true,
	KindSignificantChange: true,
	KindUnifiedProfile:    true,
}

// ParseKind validates a report kind from external input.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !validKinds[k] {
		return "", errUnknownKind(s)
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// BlockType tags a section block variant.
type BlockType string

const (
	BlockHeading     BlockType = "heading"
	BlockKeyValue    BlockType = "key_value"
	BlockList        BlockType = "list"
	BlockAlert       BlockType = "alert"
	BlockTable       BlockType = "table"
	BlockNestedTable BlockType = "nested_table"
)

// AlertLevel grades an alert block.
type AlertLevel string

const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// KV is one key-value row.
type KV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Table is a simple column/row grid.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// TitledTable is one sub-table of a nested-table block.
type TitledTable struct {
	Title string `json:"title"`
	Table Table  `json:"table"`
}

// Block is one typed section of a report. Exactly the fields of its Type are
// populated.
type Block struct {
	Type    BlockType     `json:"type"`
	Heading string        `json:"heading,omitempty"`
	Pairs   []KV          `json:"pairs,omitempty"`
	Items   []string      `json:"items,omitempty"`
	Level   AlertLevel    `json:"level,omitempty"`
	Text    string        `json:"text,omitempty"`
	Table   *Table        `json:"table,omitempty"`
	Nested  []TitledTable `json:"nested,omitempty"`
}

// Report is the assembled document model: metadata plus ordered sections.
type Report struct {
	Kind         Kind                `json:"kind"`
	Title        string              `json:"title"`
	AssessmentID domain.AssessmentID `json:"-"`
	Operator     string              `json:"operator"`
	Framework    domain.Framework    `json:"framework,omitempty"`
	GeneratedAt  time.Time           `json:"generated_at"`
	Sections     []Block             `json:"sections"`
}

// Block constructors keep assembly code declarative.

func Heading(text string) Block {
	return Block{Type: BlockHeading, Heading: text}
}

func KeyValues(pairs ...KV) Block {
	return Block{Type: BlockKeyValue, Pairs: pairs}
}

func List(items ...string) Block {
	return Block{Type: BlockList, Items: items}
}

func Alert(level AlertLevel, text string) Block {
	return Block{Type: BlockAlert, Level: level, Text: text}
}

func NewTable(columns []string, rows [][]string) Block {
	return Block{Type: BlockTable, Table: &Table{Columns: columns, Rows: rows}}
}

func NestedTables(tables ...TitledTable) Block {
	return Block{Type: BlockNestedTable, Nested: tables}
}
