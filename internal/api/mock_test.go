package api

import (
	"errors"
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody is a ReadCloser that simulates reading response data
type MockResponseBody struct {
	data    []byte
	pos     int
	readErr error
	closed  bool
}

// NewMockResponseBody creates a new MockResponseBody with the given data
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	m.closed = true
	return nil
}

// MockHttpClient is a Doer that records the request and returns a canned response
type MockHttpClient struct {
	StatusCode int
	Body       []byte
	BodyErr    error
	Err        error

	LastRequest *fhttp.Request
	LastBody    []byte
	body        *MockResponseBody
}

// Do implements the Doer interface
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.LastRequest = req
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.LastBody = data
	}

	if m.Err != nil {
		return nil, m.Err
	}

	m.body = NewMockResponseBody(m.Body)
	m.body.readErr = m.BodyErr
	return &fhttp.Response{
		StatusCode: m.StatusCode,
		Body:       m.body,
		Header:     make(fhttp.Header),
	}, nil
}

// timeoutError satisfies the Timeout() interface checked by os.IsTimeout
type timeoutError struct{}

func (timeoutError) Error() string   { return "Post \"https://x/?key=secret-key\": i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var errConnRefused = errors.New("dial tcp: connection refused")
