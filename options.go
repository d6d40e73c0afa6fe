package nvstore

import "os"

// RegionOptions menyediakan opsi konfigurasi untuk file region.
//
//   - UseMmap:  aktifkan memory-mapping untuk akses data langsung; bila false,
//     seluruh isi file dibaca ke heap saat open dan ditulis kembali saat Flush
//   - FileMode: mode pembuatan file region
//   - DirMode:  mode pembuatan direktori induk
//
// Nilai nol artinya gunakan default. Lihat DefaultRegionOptions().
type RegionOptions struct {
	UseMmap  bool        // Gunakan memory-mapping untuk akses langsung
	FileMode os.FileMode // Mode file saat dibuat (default 0666)
	DirMode  os.FileMode // Mode direktori induk (default 0755)
}

// DefaultRegionOptions mengembalikan konfigurasi default yang digunakan OpenFileRegion.
func DefaultRegionOptions() RegionOptions {
	return RegionOptions{
		UseMmap:  true,
		FileMode: 0o666,
		DirMode:  0o755,
	}
}
