package main

import (
	"reflect"
	"testing"
)

func rec(id, title, path string, watched bool) VideoRecord {
	return VideoRecord{
		ID:            id,
		Title:         title,
		FilePath:      path,
		DurationNanos: -1,
		SizeBytes:     -1,
		Watched:       watched,
		Exists:        true,
	}
}

func idsOf(rows []VideoRecord) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ID)
	}
	return out
}

func TestWatchedModeFromInput(t *testing.T) {
	tests := []struct {
		input string
		want  watchedMode
	}{
		{"", watchedAny},
		{"y", watchedOnly},
		{"Y", watchedOnly},
		{"s", watchedOnly},
		{"t", watchedOnly},
		{"n", watchedNot},
		{"f", watchedNot},
		{"F", watchedNot},
		{" n ", watchedNot},
		{"x", watchedAny},
		{"yes", watchedAny},
	}
	for _, tt := range tests {
		if got := watchedModeFromInput(tt.input); got != tt.want {
			t.Errorf("watchedModeFromInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFilterRecordsIndependentPredicatesAND(t *testing.T) {
	all := []VideoRecord{
		rec("1", "Alpha Trip", "/movies/trips/alpha.mp4", true),
		rec("2", "Beta Trip", "/movies/trips/beta.mp4", false),
		rec("3", "Gamma Home", "/movies/home/gamma.mp4", false),
		rec("4", "Delta Trip", "/clips/trips/delta.mp4", true),
	}

	tests := []struct {
		name    string
		filters FilterState
		want    []string
	}{
		{
			name:    "no filters keeps everything",
			filters: FilterState{},
			want:    []string{"1", "2", "3", "4"},
		},
		{
			name:    "title only",
			filters: FilterState{TitleQuery: "trip"},
			want:    []string{"1", "2", "4"},
		},
		{
			name:    "folder only",
			filters: FilterState{FolderQuery: "movies"},
			want:    []string{"1", "2", "3"},
		},
		{
			name:    "title AND folder AND watched",
			filters: FilterState{TitleQuery: "trip", FolderQuery: "movies", Watched: watchedNot},
			want:    []string{"2"},
		},
		{
			name:    "watched only",
			filters: FilterState{Watched: watchedOnly},
			want:    []string{"1", "4"},
		},
		{
			name:    "title query matches id as well",
			filters: FilterState{TitleQuery: "3"},
			want:    []string{"3"},
		},
		{
			name:    "no survivors",
			filters: FilterState{TitleQuery: "zzz"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idsOf(filterRecords(all, tt.filters))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterRecords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsPatternFailsOpen(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"empty query passes", "", "anything", true},
		{"plain substring", "bet", "Beta Trip", true},
		{"case insensitive", "BETA", "beta trip", true},
		{"no match", "omega", "Beta Trip", false},
		{"malformed regex passes everything", "[unclosed", "whatever", true},
		{"malformed regex passes empty", "(dangling", "", true},
		{"regex syntax is live", "a.p", "alpha", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsPattern(tt.query)(tt.text); got != tt.want {
				t.Errorf("containsPattern(%q)(%q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestFolderOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.mp4", "/a/b"},
		{"a/b/c.mp4", "a/b"},
		{"c.mp4", ""},
		{"/c.mp4", "/"},
		{"C:\\videos\\clip.mp4", "C:/videos"},
		{"/a//b/c.mp4", "/a/b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := folderOf(tt.path); got != tt.want {
			t.Errorf("folderOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDefaultSortPromotesPriorityFolder(t *testing.T) {
	all := []VideoRecord{
		rec("z", "Z", "/z/a.mp4", false),
		rec("p", "P", "/_auto-delete/b.mp4", false),
		rec("a", "A", "/a/a.mp4", false),
	}
	spec := SortSpec{Column: sortDefault, Priority: "_auto-delete"}

	got := idsOf(sortRecords(all, spec))
	want := []string{"p", "a", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sortRecords() = %v, want %v", got, want)
	}
}

func TestSortRecordsDoesNotMutateInput(t *testing.T) {
	all := []VideoRecord{
		rec("b", "B", "/b.mp4", false),
		rec("a", "A", "/a.mp4", false),
	}
	_ = sortRecords(all, SortSpec{Column: sortDefault})
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("input slice was reordered: %v", idsOf(all))
	}
}

func TestSortRecordsColumns(t *testing.T) {
	a := rec("a", "bravo", "/x/a.mp4", false)
	a.DurationNanos = 30e9
	a.SizeBytes = 100
	b := rec("b", "Alpha", "/y/b.mp4", true)
	b.DurationNanos = 10e9
	b.SizeBytes = 300

	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{"title is case folded", SortSpec{Column: sortTitle}, []string{"b", "a"}},
		{"title descending", SortSpec{Column: sortTitle, Desc: true}, []string{"a", "b"}},
		{"duration ascending", SortSpec{Column: sortDuration}, []string{"b", "a"}},
		{"size ascending", SortSpec{Column: sortSize}, []string{"a", "b"}},
		{"unwatched first", SortSpec{Column: sortWatched}, []string{"a", "b"}},
		{"folder", SortSpec{Column: sortFolder}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idsOf(sortRecords([]VideoRecord{a, b}, tt.spec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sortRecords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageWindow(t *testing.T) {
	rows := make([]VideoRecord, 23)
	for i := range rows {
		rows[i] = rec(string(rune('a'+i)), "", "", false)
	}

	tests := []struct {
		name  string
		page  PaginationState
		first string
		count int
	}{
		{"first page", PaginationState{Index: 0, Size: 10}, "a", 10},
		{"second page", PaginationState{Index: 1, Size: 10}, "k", 10},
		{"short last page", PaginationState{Index: 2, Size: 10}, "u", 3},
		{"out of range is empty", PaginationState{Index: 3, Size: 10}, "", 0},
		{"negative index is empty", PaginationState{Index: -1, Size: 10}, "", 0},
		{"zero size is empty", PaginationState{Index: 0, Size: 0}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageWindow(rows, tt.page)
			if len(got) != tt.count {
				t.Fatalf("pageWindow() returned %d rows, want %d", len(got), tt.count)
			}
			if tt.count > 0 && got[0].ID != tt.first {
				t.Errorf("pageWindow() first row = %q, want %q", got[0].ID, tt.first)
			}
		})
	}
}

func TestPipelineMemoizesUntilInputChanges(t *testing.T) {
	p := newPipeline("_auto-delete")
	p.SetRecords([]VideoRecord{
		rec("1", "One", "/a/1.mp4", false),
		rec("2", "Two", "/a/2.mp4", false),
	})

	first := p.VisibleRows(PaginationState{Index: 0, Size: 10})
	second := p.VisibleRows(PaginationState{Index: 0, Size: 10})
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both reads to see 2 rows, got %d and %d", len(first), len(second))
	}
	// Same cached backing array: no recomputation happened between reads.
	if &first[0] != &second[0] {
		t.Error("expected memoized reads to share the cached slice")
	}

	p.SetFilters(FilterState{TitleQuery: "one"})
	third := p.VisibleRows(PaginationState{Index: 0, Size: 10})
	if len(third) != 1 || third[0].ID != "1" {
		t.Fatalf("after filter change got %v, want [1]", idsOf(third))
	}

	// Setting identical filters again must not bump the revision.
	revBefore := p.rev
	p.SetFilters(FilterState{TitleQuery: "one"})
	if p.rev != revBefore {
		t.Error("identical filters bumped the revision counter")
	}
}

func TestSortIsStableOverEqualKeys(t *testing.T) {
	all := []VideoRecord{
		rec("1", "Same", "/m/c.mp4", false),
		rec("2", "Same", "/m/a.mp4", true),
		rec("3", "Same", "/m/b.mp4", false),
	}
	got := idsOf(computeVisibleRows(all, FilterState{},
		SortSpec{Column: sortTitle}, PaginationState{Index: 0, Size: 10}))
	want := []string{"1", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("computeVisibleRows() = %v, want %v", got, want)
	}
}

// End-to-end walk of the browse flow: 23 unwatched-filtered rows at size
// 10 span three pages, the controller refuses to run past the last page,
// and an oversized index re-clamps when the size changes.
func TestBrowseFlowPaginationScenario(t *testing.T) {
	var all []VideoRecord
	for i := 0; i < 30; i++ {
		watched := i >= 23
		all = append(all, rec(itoa2(i), "Video", "/lib/"+itoa2(i)+".mp4", watched))
	}

	p := newPipeline("_auto-delete")
	p.SetRecords(all)
	p.SetFilters(FilterState{Watched: watchedNot})
	pager := newPageController()
	if !pager.SetSize(10) {
		t.Fatal("size 10 should be allowed")
	}
	pager.SetCount(p.FilteredCount())

	if got := p.FilteredCount(); got != 23 {
		t.Fatalf("filtered count = %d, want 23", got)
	}
	if got := pager.LastPage(); got != 2 {
		t.Fatalf("last page = %d, want 2", got)
	}

	pager.NextPage()
	pager.NextPage()
	if got := len(p.VisibleRows(pager.State())); got != 3 {
		t.Fatalf("last page has %d rows, want 3", got)
	}

	// Advancing past the end clamps back to the last page.
	pager.NextPage()
	if pager.Index() != 2 {
		t.Fatalf("index after overshoot = %d, want 2", pager.Index())
	}

	// Growing the page size re-clamps the index against the new bounds.
	pager.SetSize(20)
	pager.SetCount(p.FilteredCount())
	if pager.Index() != 1 {
		t.Fatalf("index after resize = %d, want 1", pager.Index())
	}
	if got := len(p.VisibleRows(pager.State())); got != 3 {
		t.Fatalf("page at size 20 index 1 has %d rows, want 3", got)
	}
}

func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
