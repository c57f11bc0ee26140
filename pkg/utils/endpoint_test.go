package utils

import "testing"

func TestEndpoint(t *testing.T) {
	val := "localhost:2222"
	e, err := NewEndpoint(val)
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != val {
		t.Fail()
	}

	if (e.Host != "localhost") || (e.Port != 2222) {
		t.Fail()
	}
}

func TestEndpointDefaults(t *testing.T) {
	list := []string{
		":9000",
		"example.com",
		"::1",
		"[::1]:8080",
	}
	expected := []Endpoint{
		{Host: "127.0.0.1", Port: 9000},
		{Host: "example.com", Port: DefaultWebPort},
		{Host: "::1", Port: DefaultWebPort},
		{Host: "::1", Port: 8080},
	}
	for idx, s := range list {
		e, err := NewEndpoint(s)
		if err != nil {
			t.Fatalf("%s: %s", s, err)
		}
		if *e != expected[idx] {
			t.Fatalf("parsed: %+v expected: %+v", e, expected[idx])
		}
	}

	if _, err := NewEndpoint("host:notaport"); err == nil {
		t.Fatalf("should fail on invalid port")
	}
	if _, err := NewEndpoint("host:70000"); err == nil {
		t.Fatalf("should fail on out of range port")
	}
}
