package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/iotest"
)

// closeRecorder wraps a response body and records whether it was closed.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error { c.closed = true; return nil }

// staticTransport serves one canned response, bypassing the network.
type staticTransport struct {
	resp *http.Response
}

func (t *staticTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.resp.Request = req
	return t.resp, nil
}

func TestJwget_AlwaysClosesBody(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   io.Reader
	}{
		{name: "http error", status: 500, body: strings.NewReader("oops")},
		{name: "truncated body", status: 200, body: iotest.ErrReader(fmt.Errorf("connection cut"))},
		{name: "bad json", status: 200, body: strings.NewReader("{")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := &closeRecorder{Reader: tc.body}
			client := &http.Client{Transport: &staticTransport{resp: &http.Response{
				StatusCode: tc.status,
				Status:     fmt.Sprintf("%d %s", tc.status, http.StatusText(tc.status)),
				Header:     make(http.Header),
				Body:       body,
			}}}

			var data any
			if err := jwget(context.Background(), client, "http://quotes.test/chart", &data); err == nil {
				t.Fatal("jwget should have failed")
			}
			if !body.closed {
				t.Error("response body left open")
			}
		})
	}
}
