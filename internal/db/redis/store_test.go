package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/tutordex/internal/db"
)

func newMockStore(t *testing.T) (*Store, *mock.Client) {
	t.Helper()
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)
	return newStoreWithClient(c), c
}

// --- client.go ---

func TestPing_Success(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	err := s.Ping(context.Background())
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpPing {
		t.Fatalf("expected db.Error with op PING, got %v", err)
	}
}

func TestNewStore_RequiresAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty addrs")
	}
}

// --- json.go ---

func TestJSONSet(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("JSON.SET", "tutordex:users:t1", "$", `{"firstname":"Ann"}`)).
		Return(mock.Result(mock.RedisString("OK")))

	if err := s.JSONSet(context.Background(), "tutordex:users:t1", "$", []byte(`{"firstname":"Ann"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONSetMulti(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		DoMulti(gomock.Any(),
			mock.Match("JSON.SET", "k1", "$", "{}"),
			mock.Match("JSON.SET", "k2", "$", "[]"),
		).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisString("OK")),
			mock.ErrorResult(errors.New("OOM")),
		})

	err := s.JSONSetMulti(context.Background(), []db.JSONSetItem{
		{Key: "k1", Path: "$", Data: []byte("{}")},
		{Key: "k2", Path: "$", Data: []byte("[]")},
	})
	if err == nil {
		t.Fatal("expected error for failed item")
	}
}

func TestJSONSetMulti_Empty(t *testing.T) {
	s, _ := newMockStore(t)
	if err := s.JSONSetMulti(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONGet(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("JSON.GET", "k1", "$")).
		Return(mock.Result(mock.RedisString(`[{"firstname":"Ann"}]`)))

	raw, err := s.JSONGet(context.Background(), "k1", "$")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `[{"firstname":"Ann"}]` {
		t.Errorf("raw = %s", raw)
	}
}

func TestJSONGet_NotFound(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("JSON.GET", "missing", "$")).
		Return(mock.Result(mock.RedisNil()))

	_, err := s.JSONGet(context.Background(), "missing", "$")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestJSONGetMulti(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		DoMulti(gomock.Any(),
			mock.Match("JSON.GET", "k1", "$"),
			mock.Match("JSON.GET", "gone", "$"),
			mock.Match("JSON.GET", "k2", "$"),
		).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisString(`[{"a":1}]`)),
			mock.Result(mock.RedisNil()),
			mock.Result(mock.RedisString(`[{"b":2}]`)),
		})

	out, err := s.JSONGetMulti(context.Background(), []string{"k1", "gone", "k2"}, "$")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if string(out[0]) != `[{"a":1}]` || out[1] != nil || string(out[2]) != `[{"b":2}]` {
		t.Errorf("unexpected entries: %q", out)
	}
}

func TestJSONGetMulti_Error(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		DoMulti(gomock.Any(), mock.Match("JSON.GET", "k1", "$")).
		Return([]rueidis.RedisResult{mock.ErrorResult(errors.New("LOADING"))})

	_, err := s.JSONGetMulti(context.Background(), []string{"k1"}, "$")
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpJSONGet {
		t.Fatalf("expected db.Error with op JSON.GET, got %v", err)
	}
}

func TestJSONGetMulti_WrongTypeKeyIsReported(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		DoMulti(gomock.Any(),
			mock.Match("JSON.GET", "k1", "$"),
			mock.Match("JSON.GET", "plain", "$"),
		).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisString(`[{"a":1}]`)),
			mock.Result(mock.RedisError("WRONGTYPE Operation against a key holding the wrong kind of value")),
		})

	out, err := s.JSONGetMulti(context.Background(), []string{"k1", "plain"}, "$")
	var keyErrs *db.KeyErrors
	if !errors.As(err, &keyErrs) {
		t.Fatalf("expected *db.KeyErrors, got %v", err)
	}
	if keys := keyErrs.Keys(); len(keys) != 1 || keys[0] != "plain" {
		t.Errorf("failed keys = %v, want [plain]", keys)
	}
	if len(out) != 2 || string(out[0]) != `[{"a":1}]` || out[1] != nil {
		t.Errorf("unexpected entries: %q", out)
	}
}

// --- keys.go ---

func TestScan_Paginates(t *testing.T) {
	s, c := newMockStore(t)

	gomock.InOrder(
		c.EXPECT().
			Do(gomock.Any(), mock.Match("SCAN", "0", "MATCH", "tutordex:users:*", "COUNT", "100")).
			Return(mock.Result(mock.RedisArray(
				mock.RedisString("7"),
				mock.RedisArray(mock.RedisString("tutordex:users:a")),
			))),
		c.EXPECT().
			Do(gomock.Any(), mock.Match("SCAN", "7", "MATCH", "tutordex:users:*", "COUNT", "100")).
			Return(mock.Result(mock.RedisArray(
				mock.RedisString("0"),
				mock.RedisArray(mock.RedisString("tutordex:users:b"), mock.RedisString("tutordex:users:c")),
			))),
	)

	keys, err := s.Scan(context.Background(), "tutordex:users:*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 3 || keys[0] != "tutordex:users:a" || keys[2] != "tutordex:users:c" {
		t.Errorf("keys = %v", keys)
	}
}

func TestScan_Error(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SCAN", "0", "MATCH", "*", "COUNT", "100")).
		Return(mock.ErrorResult(errors.New("NOPERM")))

	if _, err := s.Scan(context.Background(), "*"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDel(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", "k1")).
		Return(mock.Result(mock.RedisInt64(1)))

	if err := s.Del(context.Background(), "k1"); err != nil {
		t.Fatalf("Del() error: %v", err)
	}
}

func TestDel_Error(t *testing.T) {
	s, c := newMockStore(t)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", "k1")).
		Return(mock.ErrorResult(errors.New("READONLY")))

	err := s.Del(context.Background(), "k1")
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpDel {
		t.Fatalf("expected db.Error with op DEL, got %v", err)
	}
}
