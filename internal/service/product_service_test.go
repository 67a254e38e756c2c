package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/spec-kit/phoneshop-web/internal/client"
	"github.com/spec-kit/phoneshop-web/internal/domain"
	apperrors "github.com/spec-kit/phoneshop-web/pkg/util"
)

func productMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer mgr-token" {
			writeEnvelope(w, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", phones)
	})
	mux.HandleFunc("GET /products/brands", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []string{"Apple", "Google", "Samsung"})
	})
	mux.HandleFunc("POST /products/add", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "not multipart", nil)
			return
		}
		f, fh, err := r.FormFile("image")
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, "image missing", nil)
			return
		}
		defer f.Close() //nolint:errcheck
		data, _ := io.ReadAll(f)
		writeEnvelope(w, http.StatusCreated, "", domain.Product{
			ID:       "p9",
			Name:     r.FormValue("name"),
			Brand:    r.FormValue("brand"),
			ImageURL: fh.Filename + ":" + string(data),
		})
	})
	mux.HandleFunc("PATCH /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in client.ProductInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeEnvelope(w, http.StatusOK, "Updated", domain.Product{ID: r.PathValue("id"), RetailPrice: in.RetailPrice})
	})
	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", nil)
	})
	return mux
}

func TestProductListAndBrands(t *testing.T) {
	svc := NewProductService(fakeAPI(t, productMux(t)))
	ctx := context.Background()

	products, err := svc.List(ctx, managerSession)
	if err != nil || len(products) != len(phones) {
		t.Fatalf("List() = %d products, %v", len(products), err)
	}
	brands, err := svc.Brands(ctx, managerSession)
	if err != nil || len(brands) != 3 || brands[0] != "Apple" {
		t.Fatalf("Brands() = %v, %v", brands, err)
	}
	if _, err := svc.Brands(ctx, guestSession); apperrors.ToDomainError(err).Code != "UNAUTHORIZED" {
		t.Errorf("guest brands: err = %v", err)
	}
}

func TestProductAdd(t *testing.T) {
	valid := client.ProductInput{Name: "Pixel 9", Brand: "Google", ImportPrice: 500, RetailPrice: 799, Amount: 3}
	tests := []struct {
		name  string
		in    client.ProductInput
		image *client.Image
		code  string
	}{
		{"uploads with image", valid, &client.Image{Filename: "pixel.png", Data: strings.NewReader("png")}, ""},
		{"image required", valid, nil, "VALIDATION_FAILED"},
		{"name required", client.ProductInput{Brand: "Google", RetailPrice: 1}, &client.Image{Filename: "a.png", Data: strings.NewReader("x")}, "VALIDATION_FAILED"},
		{"negative stock", client.ProductInput{Name: "X", Brand: "Y", RetailPrice: 1, Amount: -1}, &client.Image{Filename: "a.png", Data: strings.NewReader("x")}, "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProductService(fakeAPI(t, productMux(t)))

			p, msg, err := svc.Add(context.Background(), managerSession, tt.in, tt.image)
			if tt.code != "" {
				if apperrors.ToDomainError(err).Code != tt.code {
					t.Fatalf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() error: %v", err)
			}
			if p.ID != "p9" || p.Name != "Pixel 9" || p.ImageURL != "pixel.png:png" {
				t.Errorf("product = %+v", p)
			}
			if msg != "Product added" {
				t.Errorf("msg = %q", msg)
			}
		})
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	svc := NewProductService(fakeAPI(t, productMux(t)))
	ctx := context.Background()

	p, msg, err := svc.Update(ctx, adminSession, "p1", client.ProductInput{RetailPrice: 649})
	if err != nil || p.ID != "p1" || p.RetailPrice != 649 || msg != "Updated" {
		t.Fatalf("Update() = %+v, %q, %v", p, msg, err)
	}
	if _, _, err := svc.Update(ctx, adminSession, "p1", client.ProductInput{RetailPrice: -1}); apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("negative price: err = %v", err)
	}

	msg, err = svc.Delete(ctx, adminSession, "p1")
	if err != nil || msg != "Product deleted" {
		t.Fatalf("Delete() = %q, %v", msg, err)
	}
}
