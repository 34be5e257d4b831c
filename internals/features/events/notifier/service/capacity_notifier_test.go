// file: internals/features/events/notifier/service/capacity_notifier_test.go
package service

import "testing"

func TestShouldNotifyLatch(t *testing.T) {
	// capacity_total=3, threshold=1: terpicu saat sisa slot ≤ 1
	const capTotal, threshold = 3, 1

	// dua admisi pertama: sisa 2 → belum
	if ShouldNotify(capTotal, threshold, 1, false) {
		t.Error("sisa 2 belum boleh terpicu")
	}
	// admisi kedua: sisa 1 → terpicu sekali
	if !ShouldNotify(capTotal, threshold, 2, false) {
		t.Error("sisa 1 harus terpicu")
	}
	// setelah latch terpasang: sisa 0 tidak terpicu lagi
	if ShouldNotify(capTotal, threshold, 3, true) {
		t.Error("latch terpasang, tidak boleh terpicu lagi")
	}
	// sisa naik lagi (cancel) tidak mereset latch
	if ShouldNotify(capTotal, threshold, 1, true) {
		t.Error("kenaikan sisa slot tidak mereset latch")
	}
	// edit konfigurasi mereset latch → terpicu lagi pada evaluasi berikutnya
	if !ShouldNotify(capTotal, 2, 2, false) {
		t.Error("setelah reset latch + threshold baru, harus terpicu lagi")
	}
}

func TestShouldNotifyDisabled(t *testing.T) {
	if ShouldNotify(0, 1, 100, false) {
		t.Error("capacity_total=0 berarti notifikasi mati")
	}
	if ShouldNotify(10, 0, 10, false) {
		t.Error("threshold=0 berarti notifikasi mati")
	}
}
