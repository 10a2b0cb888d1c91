package main

import (
	"regexp"
	"sort"
	"strings"
)

// VideoRecord is the client-side view of one catalog entry. Duration and
// size use -1 when the server never probed the file.
type VideoRecord struct {
	ID            string
	Title         string
	FilePath      string
	DurationNanos int64
	SizeBytes     int64
	Watched       bool
	Exists        bool
	SourceURL     string
}

type watchedMode int

const (
	watchedAny watchedMode = iota
	watchedOnly
	watchedNot
)

// watchedModeFromInput maps the free-form single-letter filter field to a
// mode: y/s/t mean watched, n/f mean unwatched, anything else means no
// constraint.
func watchedModeFromInput(value string) watchedMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "s", "t":
		return watchedOnly
	case "n", "f":
		return watchedNot
	default:
		return watchedAny
	}
}

// FilterState holds the per-column filter inputs. Duration and size are
// accepted but inert: the legacy pipeline never wired them, so the UI
// renders them as disabled inputs instead of pretending they work.
type FilterState struct {
	Watched       watchedMode
	TitleQuery    string
	FolderQuery   string
	DurationQuery string
	SizeQuery     string
}

type sortColumn int

const (
	sortDefault sortColumn = iota
	sortTitle
	sortFolder
	sortDuration
	sortSize
	sortWatched
)

type SortSpec struct {
	Column   sortColumn
	Desc     bool
	Priority string // priority-folder marker used by the default order
}

// PaginationState is a window over the filtered set. An out-of-range
// window yields an empty page, never an error.
type PaginationState struct {
	Index int
	Size  int
}

// computeVisibleRows runs the full chain: AND of independent filter
// predicates, stable sort, then a fixed-size window.
func computeVisibleRows(all []VideoRecord, filters FilterState, spec SortSpec, page PaginationState) []VideoRecord {
	rows := sortRecords(filterRecords(all, filters), spec)
	return pageWindow(rows, page)
}

func filterRecords(all []VideoRecord, filters FilterState) []VideoRecord {
	titleMatch := containsPattern(filters.TitleQuery)
	folderMatch := containsPattern(filters.FolderQuery)

	out := make([]VideoRecord, 0, len(all))
	for _, rec := range all {
		if !matchesWatched(rec, filters.Watched) {
			continue
		}
		if !(titleMatch(rec.Title) || titleMatch(rec.ID)) {
			continue
		}
		if !folderMatch(folderOf(rec.FilePath)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesWatched(rec VideoRecord, mode watchedMode) bool {
	switch mode {
	case watchedOnly:
		return rec.Watched
	case watchedNot:
		return !rec.Watched
	default:
		return true
	}
}

// containsPattern compiles the query into a case-insensitive unanchored
// match. An empty query always passes. A query that fails to compile also
// passes: the text is usually half-typed, so the filter fails open rather
// than dropping every row.
func containsPattern(query string) func(string) bool {
	if query == "" {
		return func(string) bool { return true }
	}
	re, err := regexp.Compile("(?i).*" + query + ".*")
	if err != nil {
		return func(string) bool { return true }
	}
	return re.MatchString
}

// folderOf returns the directory portion of a file path with backslashes
// normalized. The leading empty segment of an absolute path is kept so
// "/a/b/c.mp4" yields "/a/b".
func folderOf(filePath string) string {
	norm := strings.ReplaceAll(filePath, "\\", "/")
	parts := strings.Split(norm, "/")
	if len(parts) > 0 {
		parts = parts[:len(parts)-1]
	}
	kept := make([]string, 0, len(parts))
	for idx, part := range parts {
		if len(part) > 0 || idx == 0 {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "/")
}

// sortRecords orders rows by the selected column, stable over the input
// order. The default order promotes priority-folder records above all
// others, then falls back to lexicographic file path.
func sortRecords(rows []VideoRecord, spec SortSpec) []VideoRecord {
	out := append([]VideoRecord(nil), rows...)
	less := lessFunc(spec)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if spec.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(spec SortSpec) func(a, b VideoRecord) bool {
	switch spec.Column {
	case sortDefault:
		marker := spec.Priority
		return func(a, b VideoRecord) bool {
			if marker != "" {
				ap := strings.Contains(a.FilePath, marker)
				bp := strings.Contains(b.FilePath, marker)
				if ap != bp {
					return ap
				}
			}
			return a.FilePath < b.FilePath
		}
	case sortTitle:
		return func(a, b VideoRecord) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case sortFolder:
		return func(a, b VideoRecord) bool {
			return folderOf(a.FilePath) < folderOf(b.FilePath)
		}
	case sortDuration:
		return func(a, b VideoRecord) bool { return a.DurationNanos < b.DurationNanos }
	case sortSize:
		return func(a, b VideoRecord) bool { return a.SizeBytes < b.SizeBytes }
	case sortWatched:
		return func(a, b VideoRecord) bool { return !a.Watched && b.Watched }
	default:
		return nil
	}
}

func pageWindow(rows []VideoRecord, page PaginationState) []VideoRecord {
	if page.Size <= 0 {
		return nil
	}
	start := page.Index * page.Size
	if start < 0 || start >= len(rows) {
		return nil
	}
	end := start + page.Size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// pipeline memoizes the filter+sort stages on a revision counter so the
// chain only recomputes when an input actually changed. The raw catalog
// slice is borrowed from its owner, never mutated here.
type pipeline struct {
	all     []VideoRecord
	filters FilterState
	sort    SortSpec

	rev       int
	cachedRev int
	cached    []VideoRecord
}

func newPipeline(priorityFolder string) *pipeline {
	return &pipeline{
		sort:      SortSpec{Column: sortDefault, Priority: priorityFolder},
		rev:       1,
		cachedRev: 0,
	}
}

func (p *pipeline) SetRecords(all []VideoRecord) {
	p.all = all
	p.rev++
}

func (p *pipeline) SetFilters(filters FilterState) {
	if p.filters == filters {
		return
	}
	p.filters = filters
	p.rev++
}

func (p *pipeline) SetSort(spec SortSpec) {
	if spec.Priority == "" {
		spec.Priority = p.sort.Priority
	}
	if p.sort == spec {
		return
	}
	p.sort = spec
	p.rev++
}

func (p *pipeline) Filters() FilterState { return p.filters }

// FilteredCount returns the size of the filtered+sorted set, used by the
// pagination controller to clamp its bounds after every recomputation.
func (p *pipeline) FilteredCount() int {
	return len(p.filteredSorted())
}

func (p *pipeline) VisibleRows(page PaginationState) []VideoRecord {
	return pageWindow(p.filteredSorted(), page)
}

func (p *pipeline) filteredSorted() []VideoRecord {
	if p.cachedRev != p.rev {
		p.cached = sortRecords(filterRecords(p.all, p.filters), p.sort)
		p.cachedRev = p.rev
	}
	return p.cached
}
