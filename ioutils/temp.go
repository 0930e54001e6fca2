package ioutils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// SelfdestructFile is a temporary file that removes itself on Close.
type SelfdestructFile struct {
	*os.File
}

func (f *SelfdestructFile) Close() (err error) {
	f.File.Close()
	os.Remove(f.File.Name())
	return nil
}

// ReaderToTempFile lands the full contents of src in a temporary file
// and returns it rewound to the start. The file cleans itself up on
// close, or when the context is cancelled.
func ReaderToTempFile(ctx context.Context, src io.Reader) (file *SelfdestructFile, err error) {
	temp, err := os.CreateTemp("", "*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			temp.Close()
			os.Remove(temp.Name())
		}
	}()
	go func() {
		<-ctx.Done()
		temp.Close()
		os.Remove(temp.Name())
	}()

	writer := bufio.NewWriter(temp)
	switch src.(type) {
	case *bufio.Reader:
	default:
		src = bufio.NewReader(src)
	}

	_, err = CopyContext(ctx, writer, src, DefaultBufferSize)
	if err != nil {
		return nil, fmt.Errorf("failed to copy contents: %w", err)
	}

	err = writer.Flush()
	if err != nil {
		return nil, fmt.Errorf("failed to flush writer: %w", err)
	}

	_, err = temp.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to seek to the begining of the file: %w", err)
	}

	return &SelfdestructFile{File: temp}, nil
}
