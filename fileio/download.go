package fileio

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/FloatyJellyfish/mod-updater/core"
)

// DownloadTask is one file to fetch.
type DownloadTask struct {
	Slug     string
	URL      string
	FileName string
}

// CompletedDownload reports the outcome of one task.
type CompletedDownload struct {
	Task DownloadTask
	Err  error
}

const DefaultDownloadWorkers = 4

// DownloadAll fetches every task into destDir with a bounded worker pool.
// A failed download never aborts the batch; each result carries its own
// error for the caller to summarise. Results are in task order.
func DownloadAll(tasks []DownloadTask, destDir string, workers int) []CompletedDownload {
	results := make([]CompletedDownload, len(tasks))
	if len(tasks) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		for i, task := range tasks {
			results[i] = CompletedDownload{Task: task, Err: err}
		}
		return results
	}

	progress := mpb.New(mpb.WithWidth(48))
	taskChan := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskChan {
				task := tasks[i]
				results[i] = CompletedDownload{Task: task, Err: downloadFile(progress, task, destDir)}
			}
		}()
	}
	for i := range tasks {
		taskChan <- i
	}
	close(taskChan)
	wg.Wait()
	progress.Wait()
	return results
}

func downloadFile(progress *mpb.Progress, task DownloadTask, destDir string) error {
	resp, err := core.GetWithUA(task.URL, "application/octet-stream")
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", task.FileName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", task.FileName, resp.Status)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	bar := progress.AddBar(total,
		mpb.PrependDecorators(decor.Name(task.FileName, decor.WC{W: len(task.FileName) + 1, C: decor.DidentRight})),
		mpb.AppendDecorators(decor.CountersKibiByte("% .1f / % .1f")),
	)
	reader := bar.ProxyReader(resp.Body)

	// Stream to a temp file and rename so an interrupted download never
	// leaves a half-written jar with the final name
	tmp, err := os.CreateTemp(destDir, task.FileName+".tmp*")
	if err != nil {
		bar.Abort(true)
		return err
	}
	written, err := io.Copy(tmp, reader)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		bar.Abort(true)
		return fmt.Errorf("failed to write %s: %w", task.FileName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		bar.Abort(true)
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(destDir, task.FileName)); err != nil {
		_ = os.Remove(tmp.Name())
		bar.Abort(true)
		return err
	}
	// Content-Length may be absent; mark the bar complete at whatever was read
	bar.SetTotal(written, true)
	return nil
}
