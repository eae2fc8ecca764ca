package admin

import (
	"context"
	"encoding/json"
	"sync"
)

// fakeClient записывает вызовы транспорта и отдает подготовленные ответы
type fakeClient struct {
	mu    sync.Mutex
	calls []fakeCall

	// response сериализуется в result очередного вызова
	response any
	err      error
}

type fakeCall struct {
	method string
	path   string
	body   any
}

func (f *fakeClient) record(method, path string, body, result any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if result != nil && f.response != nil {
		raw, err := json.Marshal(f.response)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, result)
	}
	return nil
}

func (f *fakeClient) Get(_ context.Context, path string, result any) error {
	return f.record("GET", path, nil, result)
}

func (f *fakeClient) Post(_ context.Context, path string, body, result any) error {
	return f.record("POST", path, body, result)
}

func (f *fakeClient) Put(_ context.Context, path string, body, result any) error {
	return f.record("PUT", path, body, result)
}

func (f *fakeClient) Patch(_ context.Context, path string, body, result any) error {
	return f.record("PATCH", path, body, result)
}

func (f *fakeClient) Delete(_ context.Context, path string) error {
	return f.record("DELETE", path, nil, nil)
}

var _ APIClient = (*fakeClient)(nil)
