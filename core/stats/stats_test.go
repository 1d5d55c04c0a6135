package stats

import (
	"reflect"
	"testing"

	"github.com/acadkit/cohort/core/alloc"
	"github.com/acadkit/cohort/core/model"
)

func rec(id string) model.Record { return model.NewRecord(id, "", "") }

func TestSummarizeDenseTable(t *testing.T) {
	p := model.Partition{
		{rec("AI1"), rec("CS1")},
		{rec("CS2")},
		{},
	}
	table := Summarize(p)

	if !reflect.DeepEqual(table.Categories, []string{"AI", "CS"}) {
		t.Fatalf("categories = %v", table.Categories)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	if table.Rows[0].Group != "G1" || table.Rows[2].Group != "G3" {
		t.Fatalf("unexpected labels: %q %q", table.Rows[0].Group, table.Rows[2].Group)
	}
	// Zero cells are populated, not omitted.
	if got := table.Rows[1].Counts["AI"]; got != 0 {
		t.Fatalf("G2[AI] = %d, want explicit 0", got)
	}
	if table.Rows[2].Counts["AI"] != 0 || table.Rows[2].Counts["CS"] != 0 {
		t.Fatal("empty group row must carry explicit zeros")
	}
	if table.Rows[0].Total != 2 || table.Rows[1].Total != 1 || table.Rows[2].Total != 0 {
		t.Fatal("row totals must equal group sizes")
	}
}

func TestSummarizeConsistencyWithAllocators(t *testing.T) {
	r := model.Roster{
		rec("AI1"), rec("AI2"), rec("AI3"), rec("CS1"), rec("CS2"),
		rec("MT1"), rec("991"), rec("992"),
	}
	allocators := []alloc.Allocator{
		alloc.RoundRobin{Priority: []string{"AI", "CS", "MT"}},
		alloc.BlockCluster{Priority: []string{"AI", "CS", "MT"}},
	}
	for _, a := range allocators {
		p, err := a.Allocate(r, 3)
		if err != nil {
			t.Fatalf("%s: %v", a.Name(), err)
		}
		table := Summarize(p)

		// Row sums equal totals.
		for _, row := range table.Rows {
			sum := 0
			for _, cat := range table.Categories {
				sum += row.Counts[cat]
			}
			if sum != row.Total {
				t.Errorf("%s %s: cell sum %d != total %d", a.Name(), row.Group, sum, row.Total)
			}
		}
		// Column sums equal roster category counts.
		rosterCounts := r.Categories()
		for _, cat := range table.Categories {
			sum := 0
			for _, row := range table.Rows {
				sum += row.Counts[cat]
			}
			if sum != rosterCounts[cat] {
				t.Errorf("%s column %s: sum %d != roster count %d", a.Name(), cat, sum, rosterCounts[cat])
			}
		}
	}
}

func TestSummarizeEmptyPartition(t *testing.T) {
	table := Summarize(make(model.Partition, 5))
	if len(table.Categories) != 0 {
		t.Fatalf("categories = %v, want none", table.Categories)
	}
	if len(table.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(table.Rows))
	}
	for _, row := range table.Rows {
		if row.Total != 0 {
			t.Fatalf("%s total = %d, want 0", row.Group, row.Total)
		}
	}
	if !reflect.DeepEqual(table.Header(), []string{"Group", "Total"}) {
		t.Fatalf("header = %v", table.Header())
	}
}

func TestHeaderAndRecord(t *testing.T) {
	table := Summarize(model.Partition{{rec("AI1"), rec("AI2"), rec("CS1")}})
	if !reflect.DeepEqual(table.Header(), []string{"Group", "AI", "CS", "Total"}) {
		t.Fatalf("header = %v", table.Header())
	}
	if got := table.Record(table.Rows[0]); !reflect.DeepEqual(got, []int{2, 1, 3}) {
		t.Fatalf("record = %v", got)
	}
}

func TestBalance(t *testing.T) {
	table := Summarize(model.Partition{
		{rec("AI1"), rec("AI2")},
		{rec("CS1"), rec("CS2")},
		{rec("MT1"), rec("MT2")},
	})
	s := table.Balance()
	if s.Groups != 3 || s.Min != 2 || s.Max != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Mean != 2 || s.StdDev != 0 {
		t.Fatalf("balanced partition must report mean 2, stddev 0: %+v", s)
	}

	if s := Summarize(nil).Balance(); s.Groups != 0 || s.Mean != 0 {
		t.Fatalf("empty partition summary: %+v", s)
	}
}
