package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fakeAPI is an in-memory stand-in for the community REST API.
type fakeAPI struct {
	mu   sync.Mutex
	hits map[string]int

	waiting  []map[string]interface{}
	paid     []map[string]interface{}
	expenses []map[string]interface{}
	nextID   int

	generateStatus int
	generateBody   string
	generateSent   map[string]interface{}

	uploadedField string
	uploadedName  string

	invoicesStatus      int
	notificationsStatus int
	summaryStatus       int
	verifyStatus        int

	invoicesDelay time.Duration
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits: map[string]int{},
		waiting: []map[string]interface{}{
			{"id": 42, "amount": 65000, "period": "2025-03-01", "status": "waiting_verification", "payment_proof_url": "proofs/42.jpg",
				"user": map[string]interface{}{"name": "Budi", "house_number": "A-12"}},
			{"id": 43, "amount": 65000, "period": "2025-03-01", "status": "awaiting_verification", "payment_proof_url": nil,
				"user": map[string]interface{}{"name": "Siti", "house_number": "B-03"}},
		},
		paid: []map[string]interface{}{
			{"id": 7, "amount": 65000, "period": "2025-03-01", "status": "paid", "updated_at": "2025-03-05T10:00:00Z",
				"user": map[string]interface{}{"name": "Budi", "house_number": "A-12"}},
		},
		expenses: []map[string]interface{}{
			{"id": 1, "description": "Kebersihan", "amount": 150000, "date": "2025-03-10"},
		},
		nextID:         2,
		generateStatus: http.StatusOK,
		generateBody:   `{"message":"Tagihan untuk periode 2025-03 berhasil dibuat untuk 12 warga."}`,
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.hits {
		n += v
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) authed(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthenticated."})
		return false
	}
	return true
}

func failWith(w http.ResponseWriter, status int) bool {
	if status == 0 || status == http.StatusOK {
		return false
	}
	writeJSON(w, status, map[string]string{})
	return true
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()
	f.mux().ServeHTTP(w, r)
}

func (f *fakeAPI) mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch {
		case req.Password != "rahasia":
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Email atau password salah."})
		case req.Email == "pengurus@rembug.test":
			writeJSON(w, http.StatusOK, map[string]interface{}{"token": "tok-pengurus", "role": "pengurus"})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"access_token": "tok-warga",
				"user":         map[string]interface{}{"id": 3, "name": "Budi", "role": "warga"},
			})
		}
	})

	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	})

	mux.HandleFunc("GET /announcements", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
			{"id": 1, "title": "Kerja Bakti", "content": "**Minggu pagi** <script>alert(1)</script>", "author_name": "Pak RT", "created_at": "2025-03-01T07:00:00Z"},
		}})
	})

	mux.HandleFunc("GET /notifications", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) || failWith(w, f.notificationsStatus) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
			{"id": "n-1", "data": map[string]string{"message": "Tagihan Maret sudah terbit."}, "created_at": "2025-03-01T08:00:00Z"},
		}})
	})

	mux.HandleFunc("GET /invoices", func(w http.ResponseWriter, r *http.Request) {
		if failWith(w, f.invoicesStatus) || !f.authed(w, r) {
			return
		}
		if f.invoicesDelay > 0 {
			select {
			case <-time.After(f.invoicesDelay):
			case <-r.Context().Done():
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
			{"id": 5, "amount": 65000, "period": "2025-03-01", "status": "pending", "payment_proof_url": nil},
			{"id": 4, "amount": 65000, "period": "2025-02-01", "status": "paid", "payment_proof_url": "proofs/4.jpg"},
		}})
	})

	mux.HandleFunc("POST /invoices/{id}/upload-proof", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		file, header, err := r.FormFile("proof")
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "File bukti wajib diunggah."})
			return
		}
		defer file.Close()
		_, _ = io.Copy(io.Discard, file)
		f.mu.Lock()
		f.uploadedField, f.uploadedName = "proof", header.Filename
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Bukti pembayaran diunggah."})
	})

	mux.HandleFunc("GET /admin/invoices", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.URL.Query().Get("status") {
		case "waiting_verification":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": f.waiting})
		case "paid":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": f.paid})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": append(append([]map[string]interface{}{}, f.waiting...), f.paid...)})
		}
	})

	mux.HandleFunc("PATCH /admin/invoices/{id}/verify", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) || failWith(w, f.verifyStatus) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, inv := range f.waiting {
			if inv["id"] == id {
				inv["status"] = "paid"
				f.paid = append(f.paid, inv)
				f.waiting = append(f.waiting[:i], f.waiting[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Verified"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})

	mux.HandleFunc("POST /admin/invoices/generate-monthly", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.generateSent = body
		status, resp := f.generateStatus, f.generateBody
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	})

	mux.HandleFunc("GET /admin/expenses", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": f.expenses})
	})

	mux.HandleFunc("POST /admin/expenses", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		body["id"] = f.nextID
		f.nextID++
		f.expenses = append(f.expenses, body)
		writeJSON(w, http.StatusCreated, body)
	})

	mux.HandleFunc("DELETE /admin/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, e := range f.expenses {
			if e["id"] == id || e["id"] == float64(id) {
				f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})

	mux.HandleFunc("GET /admin/financial-summary", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) || failWith(w, f.summaryStatus) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"summary": map[string]interface{}{
			"total_income": 65000, "total_expense": 150000, "balance": -85000,
		}})
	})

	mux.HandleFunc("GET /reports/payment-status", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"user_id": 3, "name": "Budi", "house_number": "A-12", "status": "paid"},
			{"user_id": 4, "name": "Siti", "house_number": "B-03", "status": "waiting_verification"},
		})
	})

	mux.HandleFunc("GET /reports/expenses", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 1, "description": "Kebersihan", "amount": 150000, "date": "2025-03-10"},
		})
	})

	mux.HandleFunc("GET /reports/logbook", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"transactions": []map[string]interface{}{
				{"date": "2025-03-05T10:00:00Z", "description": "Iuran Budi", "type": "income", "amount": 65000},
				{"date": "2025-03-10T09:00:00Z", "description": "Kebersihan", "type": "expense", "amount": 150000},
			},
			"summary": map[string]interface{}{"total_income": 65000, "total_expense": 150000, "final_balance": -85000},
		})
	})

	return mux
}
