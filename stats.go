package nvstore

// ContainerStats menyimpan statistik operasi sebuah container sejak attach.
//
// Counter hidup di memori saja (tidak dipersistenkan) dan memakai field biasa
// karena model akses single-owner: satu pemilik per rentang byte, tanpa lock.
type ContainerStats struct {
	Pushes         uint64 // push yang diterima
	Pops           uint64 // pop yang diterima
	RejectedPushes uint64 // push ditolak karena penuh
	RejectedPops   uint64 // pop ditolak karena kosong
	Recovered      bool   // attach menemukan signature valid dan memakai isi lama
}

// Stats mengambil snapshot statistik vector.
func (v *Vector) Stats() ContainerStats { return v.stats }

// ResetStats mengatur ulang penghitung operasi vector (Recovered dipertahankan).
func (v *Vector) ResetStats() {
	rec := v.stats.Recovered
	v.stats = ContainerStats{Recovered: rec}
}

// Stats mengambil snapshot statistik queue.
func (q *Queue) Stats() ContainerStats { return q.stats }

// ResetStats mengatur ulang penghitung operasi queue (Recovered dipertahankan).
func (q *Queue) ResetStats() {
	rec := q.stats.Recovered
	q.stats = ContainerStats{Recovered: rec}
}
