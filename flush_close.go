package nvstore

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Flush memaksa isi region tersimpan ke disk.
//
// Untuk region mmap digunakan msync; untuk buffered mode seluruh heap image
// ditulis kembali lalu di-sync. Memory region tidak melakukan apa-apa.
func (r *Region) Flush() error {
	if r.file == nil {
		return nil
	}
	if r.mapped {
		if err := unix.Msync(r.data, unix.MS_SYNC); err != nil {
			return fmt.Errorf("gagal msync region: %w", err)
		}
		return nil
	}
	if _, err := r.file.WriteAt(r.data, 0); err != nil {
		return fmt.Errorf("gagal menulis image region: %w", err)
	}
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("gagal sync region: %w", err)
	}
	return nil
}

// Close menutup semua sumber daya (file & mmap) milik region.
//
// Buffered mode di-flush terlebih dahulu sehingga perubahan terakhir ikut
// tersimpan. Setelah Close, semua jendela yang pernah dikembalikan Window
// tidak boleh dipakai lagi.
func (r *Region) Close() error {
	if r.file == nil {
		r.data = nil
		return nil
	}
	var firstErr error
	if r.mapped {
		if err := unix.Munmap(r.data); err != nil {
			firstErr = fmt.Errorf("gagal unmap region: %w", err)
		}
	} else {
		if err := r.Flush(); err != nil {
			firstErr = err
		}
	}
	if err := r.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("gagal menutup region: %w", err)
	}
	r.data = nil
	r.file = nil
	return firstErr
}
