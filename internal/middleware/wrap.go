package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter and captures the status code.
type ResponseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func (rw *ResponseRecorder) Status() int { return rw.status }

func (rw *ResponseRecorder) BytesWritten() int { return rw.bytes }

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *ResponseRecorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }
