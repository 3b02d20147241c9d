package blocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

func ExampleFastRefiller() {
	refiller := NewFastRefiller(context.Background(), strings.NewReader("hello world"), 4)
	defer refiller.Close()

	cursor := NewCursor(refiller)
	b, _ := cursor.Next(11)

	fmt.Printf("%q", b)

	// Output: "hello world"
}

func TestFastRefill(t *testing.T) {
	var tests = []struct {
		chunk    int
		input    string
		readSize int
	}{
		{32, "helloworldhelloworldhelloworld", 5},
		{32, "helloworldhelloworldhelloworld", 30},
		{2, "helloworld", 3},
		{10, "helloworldhelloworldhelloworld", 10},

		// These cases are desgined to fill the FastRefiller.reads
		// buffered channel.
		{10, strings.Repeat("helloworld", 1024), 10},
		{10, strings.Repeat("helloworld", 2048), 7},
		{10, strings.Repeat("helloworld", 4096), 100},
	}

	for i, test := range tests {
		r := NewFastRefiller(context.Background(), strings.NewReader(test.input), test.chunk)
		c := NewCursor(r)

		var err error
		result := make([]byte, 0)

		for len(result) < len(test.input) {
			n := test.readSize
			if rest := len(test.input) - len(result); rest < n {
				n = rest
			}

			var b []byte
			if b, err = c.Next(n); err != nil {
				break
			}

			result = append(result, b...)
		}

		if !reflect.DeepEqual(result, []byte(test.input)) {
			t.Errorf("Wrong bytes for Case %d: %v", i, err)
		}

		if err := c.Ensure(1); !errors.Is(err, io.EOF) {
			t.Errorf("Wrong return for Case %d: want: EOF got: %v", i, err)
		}

		r.Close()
	}
}

func TestFastRefillVsCancel(t *testing.T) {
	var tests = []struct {
		chunk int
		input string
	}{
		// These cases are desgined to fill the FastRefiller.reads
		// buffered channel.
		{10, strings.Repeat("helloworld", 1024)},
		{10, strings.Repeat("helloworld", 2048)},
		{10, strings.Repeat("helloworld", 4096)},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			r := NewFastRefiller(ctx, strings.NewReader(test.input), test.chunk)
			cancel()
			time.Sleep(10 * time.Millisecond)

			c := NewCursor(r)
			err := c.Ensure(1)

			if !errors.Is(err, ErrInputOverrun) || !errors.Is(err, context.Canceled) {
				t.Errorf("want: cancelled overrun got: %v", err)
			}

			r.Close()
		})
	}
}

func TestFastRefillCancelMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewFastRefiller(ctx, strings.NewReader(strings.Repeat("helloworld", 100)), 10)
	defer r.Close()

	c := NewCursor(r)
	if _, err := c.Next(20); err != nil {
		t.Fatal(err)
	}

	cancel()

	if _, err := c.Next(1000); !errors.Is(err, context.Canceled) {
		t.Errorf("want: %v got: %v", context.Canceled, err)
	}
}

func TestFastRefillCloseIsIdempotent(t *testing.T) {
	r := NewFastRefiller(context.Background(), strings.NewReader(strings.Repeat("helloworld", 4096)), 10)

	if err := r.Close(); err != nil {
		t.Errorf("want: <nil> got: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("want: <nil> got: %v", err)
	}
}
