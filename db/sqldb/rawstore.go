package sqldb

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// RawSQLStore holds named SQL statements already rewritten for one dialect.
type RawSQLStore struct {
	mu    sync.RWMutex
	stmts map[string]string
}

func NewRawStore() *RawSQLStore {
	return &RawSQLStore{stmts: make(map[string]string)}
}

func (s *RawSQLStore) Set(key string, rawStmt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stmts[key] = rawStmt
}

func (s *RawSQLStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stmt, exists := s.stmts[key]
	return stmt, exists
}

func (s *RawSQLStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stmts)
}

type StoreGroupedStmtKey struct {
	Group    string
	StmtName string
}

func (k StoreGroupedStmtKey) String() string {
	return k.Group + "." + k.StmtName
}

// LoadGroup reads every file under the `sql` dir of fsys into the store as
// group.<name>. A file whose extension equals dbtype is a dialect override
// and wins over the standard `.sql` file of the same name, whose static
// placeholders are rewritten for dbtype.
func (s *RawSQLStore) LoadGroup(fsys fs.FS, group string, dbtype string) (int, error) {
	files, err := fs.ReadDir(fsys, "sql")
	if err != nil {
		return 0, fmt.Errorf("failed to read embedded `sql` dir: %w", err)
	}
	prefix := PlaceholderPrefixForDBType[dbtype]
	overridden := map[string]bool{}
	loaded := map[string]bool{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		filename := f.Name()
		ext := path.Ext(filename)
		name := strings.TrimSuffix(filename, ext)
		ext = strings.TrimPrefix(ext, ".")
		if ext != dbtype && ext != "sql" {
			continue
		}
		key := StoreGroupedStmtKey{Group: group, StmtName: name}.String()
		if ext == "sql" && overridden[key] {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join("sql", filename))
		if err != nil {
			return len(loaded), fmt.Errorf("failed to read %s: %w", filename, err)
		}
		if ext == dbtype {
			overridden[key] = true
			s.Set(key, string(data))
		} else {
			s.Set(key, ReplaceStaticPlaceholders(string(data), prefix))
		}
		loaded[key] = true
	}
	stmtCnt := len(loaded)
	zap.L().Named("sqldb").Info("raw sql statements loaded",
		zap.String("group", group), zap.String("dbtype", dbtype), zap.Int("count", stmtCnt))
	return stmtCnt, nil
}
