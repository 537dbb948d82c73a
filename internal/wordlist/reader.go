package wordlist

import (
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/shivanshs9/wordbench/internal/logger"
	"go.uber.org/zap"
)

type fileReader struct {
	fileName string

	filePtr *os.File
	Size    bytesize.ByteSize

	bytesRead int64
}

func openFile(fileName string) (*fileReader, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &fileReader{
		fileName: fileName,
		filePtr:  file,
		Size:     bytesize.New(float64(fi.Size())),
	}, nil
}

// Read satisfies io.Reader and logs progress at debug level.
func (reader *fileReader) Read(buffer []byte) (int, error) {
	read, err := reader.filePtr.Read(buffer)
	if read != 0 {
		reader.bytesRead += int64(read)
		logger.Debug("reading word list",
			zap.String("file", reader.fileName),
			zap.Float64("percent", reader.progress()),
			zap.Stringer("read", bytesize.New(float64(reader.bytesRead))),
		)
	}

	return read, err
}

func (reader *fileReader) progress() float64 {
	if reader.Size == 0 {
		return 100
	}

	return float64(reader.bytesRead*100) / float64(reader.Size)
}

func (reader *fileReader) Close() error {
	return reader.filePtr.Close()
}

var _ io.ReadCloser = &fileReader{}
