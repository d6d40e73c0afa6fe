package nvstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Region adalah rentang byte persisten tempat container dipetakan.
//
// Sebuah region menyediakan jendela byte yang stabil (lihat Window) selama
// masa hidupnya; container melakukan semua baca/tulis langsung pada jendela
// tersebut tanpa salinan. Region tidak pernah melakukan flush sendiri —
// durabilitas fisik adalah tanggung jawab pemanggil lewat Flush/Close.
//
// Satu rentang byte dimiliki oleh paling banyak satu container pada satu
// waktu; tidak ada penguncian.
type Region struct {
	data     []byte   // isi region (mmap atau heap image)
	file     *os.File // nil untuk memory region
	filePath string   // path file pada disk ("" untuk memory region)
	mapped   bool     // data merupakan hasil unix.Mmap
}

// NewMemoryRegion creates a volatile in-memory region of the given size.
//
// Contents live for the Region's lifetime only, which makes it suitable for
// tests and for simulated-restart scenarios: detach a container, then attach a
// new one over the same region and offset.
func NewMemoryRegion(size int) *Region {
	return &Region{data: make([]byte, size)}
}

// OpenFileRegion opens (creating if necessary) a file-backed region of exactly
// size bytes. With opts.UseMmap the file is memory-mapped and every write goes
// straight to the mapping; otherwise the whole file image is read to the heap
// at open and written back on Flush/Close.
//
// Reopening an existing file with the same size preserves its contents.
func OpenFileRegion(path string, size int64, opts RegionOptions) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region size harus positif, dapat %d", size)
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o666
	}
	if opts.DirMode == 0 {
		opts.DirMode = 0o755
	}

	// Pastikan direktori ada
	if err := os.MkdirAll(filepath.Dir(path), opts.DirMode); err != nil {
		return nil, fmt.Errorf("gagal membuat direktori: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, opts.FileMode)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka region: %w", err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal mengalokasikan region: %w", err)
	}

	r := &Region{file: f, filePath: path}

	if opts.UseMmap {
		mmap, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gagal mmap region: %w", err)
		}
		r.data = mmap
		r.mapped = true
		return r, nil
	}

	// Buffered mode: baca seluruh image ke heap.
	r.data = make([]byte, size)
	if _, err := f.ReadAt(r.data, 0); err != nil && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("gagal membaca image region: %w", err)
	}
	return r, nil
}

// Size returns the region length in bytes.
func (r *Region) Size() int64 { return int64(len(r.data)) }

// Window returns the byte window [offset, offset+length) of the region.
//
// The returned slice aliases the region's storage and stays valid (and
// writable) until Close; writes through it are what the containers persist.
// The slice is capacity-clipped so it cannot grow into neighbouring bytes.
func (r *Region) Window(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > int64(len(r.data)) {
		return nil, fmt.Errorf("window out of range: offset %d length %d (region %d bytes)",
			offset, length, len(r.data))
	}
	return r.data[offset : offset+length : offset+length], nil
}
