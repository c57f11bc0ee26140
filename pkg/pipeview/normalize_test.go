package pipeview

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/ferama/rospo-pipes/pkg/utils"
)

func keysOf(pipes []DisplayPipe) []int {
	res := make([]int, len(pipes))
	for i, p := range pipes {
		res[i] = p.Key
	}
	return res
}

func TestNormalizeOrder(t *testing.T) {
	records := []Record{{ID: "3"}, {ID: "1"}, {ID: "2"}}

	pipes := Normalize(records)
	if !reflect.DeepEqual(keysOf(pipes), []int{1, 2, 3}) {
		t.Fatalf("wrong order: %v", keysOf(pipes))
	}
	// the input must not be touched
	if records[0].ID != "3" || records[1].ID != "1" || records[2].ID != "2" {
		t.Fatalf("input was modified: %v", records)
	}
}

func TestNormalizeNumericNotLexical(t *testing.T) {
	pipes := Normalize([]Record{{ID: "10"}, {ID: "9"}, {ID: "100"}})
	if !reflect.DeepEqual(keysOf(pipes), []int{9, 10, 100}) {
		t.Fatalf("wrong order: %v", keysOf(pipes))
	}
}

func TestNormalizeDuplicates(t *testing.T) {
	records := []Record{
		{ID: "7", Endpoint: &utils.Endpoint{Host: "first", Port: 1}},
		{ID: "2"},
		{ID: "7", Endpoint: &utils.Endpoint{Host: "second", Port: 2}},
	}

	pipes := Normalize(records)
	if len(pipes) != 3 {
		t.Fatalf("rows lost: %d", len(pipes))
	}
	if pipes[1].Endpoint.Host != "first" || pipes[2].Endpoint.Host != "second" {
		t.Fatalf("equal keys should keep input order")
	}
}

func TestNormalizeInvalidKeysLast(t *testing.T) {
	records := []Record{{ID: "b"}, {ID: "5"}, {ID: ""}, {ID: "1"}, {ID: "a"}}

	pipes := Normalize(records)
	got := make([]ID, len(pipes))
	for i, p := range pipes {
		got[i] = p.ID
	}
	expected := []ID{"1", "5", "b", "", "a"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %v expected %v", got, expected)
	}
	if pipes[2].KeyValid || pipes[3].KeyValid || pipes[4].KeyValid {
		t.Fatalf("invalid keys should be flagged")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	pipes := Normalize(nil)
	if pipes == nil || len(pipes) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestNormalizeProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		n := rnd.Intn(30)
		records := make([]Record, n)
		for i := range records {
			// small key space to get plenty of duplicates
			id := ID(strconv.Itoa(rnd.Intn(10)))
			if rnd.Intn(10) == 0 {
				id = "x"
			}
			// Endpoint.Port holds the input position
			records[i] = Record{ID: id, Endpoint: &utils.Endpoint{Port: i}}
		}

		pipes := Normalize(records)
		if len(pipes) != n {
			t.Fatalf("length changed: %d -> %d", n, len(pipes))
		}
		for i := 1; i < len(pipes); i++ {
			c := compare(&pipes[i-1], &pipes[i])
			if c > 0 {
				t.Fatalf("not sorted at %d: %v", i, pipes)
			}
			if c == 0 && pipes[i-1].Endpoint.Port > pipes[i].Endpoint.Port {
				t.Fatalf("not stable at %d", i)
			}
		}

		again := Normalize(Records(pipes))
		if !reflect.DeepEqual(again, pipes) {
			t.Fatalf("normalize should be idempotent")
		}
	}
}
