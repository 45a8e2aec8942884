package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var funcCount = make(map[string]int)

// ValidateSnapshot performs snapshot testing against the JSON encoding of obj
// If the snapshot file does not exist yet, it is written and the check passes
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	validate(t, filename(depth+1, "json"), string(objJSON), msgAndArgs...)
}

// ValidateText performs snapshot testing against plain text, such as a rendered board
func ValidateText(t *testing.T, text string, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	validate(t, filename(depth+1, "txt"), text, msgAndArgs...)
}

func filename(depth int, ext string) string {
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.%s", funcName, call, ext))
}

func validate(t *testing.T, filename string, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, actual)
			return
		}

		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(actual, "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(filename string, contents string) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, []byte(contents+"\n"), 0644); err != nil {
		panic(err)
	}
}
