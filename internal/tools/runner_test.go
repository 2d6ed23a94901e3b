package tools

import (
	"context"
	"os/exec"
)

// fakeRunner records every command and replays canned results in order.
type fakeRunner struct {
	paths    map[string]string // LookPath answers; absent key means not found
	results  []fakeResult
	commands [][]string
	lookups  []string
}

type fakeResult struct {
	stdout string
	stderr string
	exit   int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	f.commands = append(f.commands, append([]string{name}, args...))
	if len(f.results) == 0 {
		return nil, nil, 0, nil
	}
	res := f.results[0]
	f.results = f.results[1:]
	return []byte(res.stdout), []byte(res.stderr), res.exit, res.err
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	f.lookups = append(f.lookups, name)
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
