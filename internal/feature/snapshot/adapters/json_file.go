// Package adapters provides persistence implementations for the snapshot feature.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"stock_snapshot/internal/feature/snapshot/domain/entity"
	"stock_snapshot/internal/feature/snapshot/usecase"
)

// JSONFileWriter はスナップショットを整形済みJSONとしてファイルに書き込む SnapshotWriter 実装です。
type JSONFileWriter struct {
	path string
	perm os.FileMode
}

// JSONFileWriterがSnapshotWriterを実装していることをコンパイル時に検証します。
var _ usecase.SnapshotWriter = (*JSONFileWriter)(nil)

// NewJSONFileWriter creates a writer targeting path. Existing content is replaced on each write.
func NewJSONFileWriter(path string) *JSONFileWriter {
	return &JSONFileWriter{path: path, perm: 0o644}
}

// Location returns the destination path.
func (w *JSONFileWriter) Location() string {
	return w.path
}

// Write はスナップショットを2スペースインデントのJSONにシリアライズして書き込みます。
// 同じディレクトリの一時ファイルに書き込んでからリネームするため、
// 書き込み先は完全な内容か元の内容のどちらかになります。
func (w *JSONFileWriter) Write(ctx context.Context, snapshot *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove temp file", "path", tmpName, "error", err)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snapshot); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Chmod(w.perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		return fmt.Errorf("rename to %s: %w", w.path, err)
	}
	committed = true
	return nil
}
