// Package tablename provides qualified table identifiers and
// round-trip-validated version stamping for table names.
//
// A stamped name is only ever observable in a valid state: construction
// computes the raw name, its stamped form, and the unstamped form of
// the stamped name as plain values, then verifies unstamp(stamp(raw))
// reproduces raw exactly before returning. A name that cannot be
// unambiguously unstamped fails construction rather than silently
// producing a wrong answer.
package tablename

import (
	"fmt"
	"strings"

	"github.com/typecellar/sdk/converr"
)

// Info identifies a table as a (project, dataset, table) triple.
type Info struct {
	Project string `json:"project"`
	Dataset string `json:"dataset"`
	Table   string `json:"table"`
}

// FullTableID renders the fully-qualified identifier
// "project.dataset.table".
func (i Info) FullTableID() string {
	return fmt.Sprintf("%s.%s.%s", i.Project, i.Dataset, i.Table)
}

// IsZero reports whether all three parts are empty.
func (i Info) IsZero() bool {
	return i == Info{}
}

func (i Info) complete() bool {
	return i.Project != "" && i.Dataset != "" && i.Table != ""
}

// HasInfo is implemented by values that carry a pre-built table
// identity.
type HasInfo interface {
	TableInfo() Info
}

// TableInfo implements HasInfo, so an Info can stand in wherever a
// handle is accepted.
func (i Info) TableInfo() Info { return i }

// Input gathers the accepted ways to identify a table. Exactly one
// resolution path has to succeed; Resolve tries them in declaration
// order.
type Input struct {
	// Triple is a direct (project, dataset, table) identification.
	Triple Info

	// Qualified is a single fully-qualified "project.dataset.table"
	// string.
	Qualified string

	// Handle is a pre-built table identity.
	Handle HasInfo
}

// Resolve produces the table identity from in, trying the direct
// triple, then the qualified string, then the handle. If no path
// yields a complete identity the returned error enumerates every
// input that was tried.
func Resolve(in Input) (Info, error) {
	if in.Triple.complete() {
		return in.Triple, nil
	}

	if in.Qualified != "" {
		parts := strings.Split(in.Qualified, ".")
		if len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
			return Info{Project: parts[0], Dataset: parts[1], Table: parts[2]}, nil
		}
	}

	if in.Handle != nil {
		if info := in.Handle.TableInfo(); info.complete() {
			return info, nil
		}
	}

	return Info{}, converr.New("resolve", converr.CodeTableIdentifier,
		fmt.Sprintf("failed to construct table id from: triple=%q, qualified=%q, handle=%v",
			in.Triple.FullTableID(), in.Qualified, in.Handle)).
		WithDetails(map[string]any{
			"triple":    in.Triple,
			"qualified": in.Qualified,
			"handle":    in.Handle,
		})
}
