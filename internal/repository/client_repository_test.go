package repository

import (
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// setupDB inicializa una base SQLite de prueba en un directorio temporal.
// La conexión global se comparte entre tests; cada test usa su propio
// user_id para aislar los datos.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	if database.DB == nil {
		os.Unsetenv("DATABASE_URL")
		os.Setenv("APP_ENV", "test")

		dir, err := os.MkdirTemp("", "p2p-test")
		if err != nil {
			t.Fatalf("error creando directorio temporal: %v", err)
		}
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("error obteniendo directorio actual: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("error cambiando de directorio: %v", err)
		}
		err = database.InitDB()
		if chdirErr := os.Chdir(wd); chdirErr != nil {
			t.Fatalf("error volviendo al directorio original: %v", chdirErr)
		}
		if err != nil {
			t.Fatalf("error inicializando la base de prueba: %v", err)
		}
	}
	return database.DB
}

func TestCreateClientYDuplicado(t *testing.T) {
	repo := NewClientRepository(setupDB(t))
	userID := "user-dup"

	client := &models.Client{UserID: userID, Name: "Ana Pérez", Country: "Venezuela"}
	if err := repo.CreateClient(client); err != nil {
		t.Fatalf("CreateClient devolvió error: %v", err)
	}
	if client.ID == "" {
		t.Error("CreateClient no asignó ID")
	}

	// El nombre es único por usuario sin distinguir mayúsculas
	dup := &models.Client{UserID: userID, Name: "ana pérez"}
	if err := repo.CreateClient(dup); !errors.Is(err, ErrClienteDuplicado) {
		t.Errorf("error = %v, esperado ErrClienteDuplicado", err)
	}

	// Otro usuario puede usar el mismo nombre
	other := &models.Client{UserID: "user-dup-2", Name: "Ana Pérez"}
	if err := repo.CreateClient(other); err != nil {
		t.Errorf("el mismo nombre en otro usuario devolvió error: %v", err)
	}
}

func TestCreateClientNombreRequerido(t *testing.T) {
	repo := NewClientRepository(setupDB(t))

	client := &models.Client{UserID: "user-nombre", Name: "   "}
	if err := repo.CreateClient(client); !errors.Is(err, ErrNombreRequerido) {
		t.Errorf("error = %v, esperado ErrNombreRequerido", err)
	}
}

func TestGetClientsOrdenadosPorAlta(t *testing.T) {
	repo := NewClientRepository(setupDB(t))
	userID := "user-orden"

	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"Primero", "Segundo", "Tercero"}
	for i, name := range names {
		client := &models.Client{UserID: userID, Name: name, CreatedAt: base.AddDate(0, 0, i)}
		if err := repo.CreateClient(client); err != nil {
			t.Fatalf("CreateClient(%s) devolvió error: %v", name, err)
		}
	}

	clients, err := repo.GetClients(userID)
	if err != nil {
		t.Fatalf("GetClients devolvió error: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("len(clients) = %d, esperado 3", len(clients))
	}
	// Los más nuevos primero
	if clients[0].Name != "Tercero" || clients[2].Name != "Primero" {
		t.Errorf("orden inesperado: %s, %s, %s", clients[0].Name, clients[1].Name, clients[2].Name)
	}
}

func TestGetClientByIDDeOtroUsuario(t *testing.T) {
	repo := NewClientRepository(setupDB(t))

	client := &models.Client{UserID: "user-propio", Name: "Cliente Propio"}
	if err := repo.CreateClient(client); err != nil {
		t.Fatalf("CreateClient devolvió error: %v", err)
	}

	if _, err := repo.GetClientByID("user-ajeno", client.ID); !errors.Is(err, ErrClienteNoEncontrado) {
		t.Errorf("error = %v, esperado ErrClienteNoEncontrado", err)
	}
}

func TestUpdateClient(t *testing.T) {
	repo := NewClientRepository(setupDB(t))
	userID := "user-update"

	primero := &models.Client{UserID: userID, Name: "Carla"}
	segundo := &models.Client{UserID: userID, Name: "Diego"}
	for _, c := range []*models.Client{primero, segundo} {
		if err := repo.CreateClient(c); err != nil {
			t.Fatalf("CreateClient devolvió error: %v", err)
		}
	}

	// Conservar el propio nombre no es conflicto
	primero.Phone = "+58 412 0000000"
	if err := repo.UpdateClient(primero); err != nil {
		t.Errorf("UpdateClient conservando el nombre devolvió error: %v", err)
	}

	// Renombrar al nombre de otro cliente sí lo es
	segundo.Name = "carla"
	if err := repo.UpdateClient(segundo); !errors.Is(err, ErrClienteDuplicado) {
		t.Errorf("error = %v, esperado ErrClienteDuplicado", err)
	}

	updated, err := repo.GetClientByID(userID, primero.ID)
	if err != nil {
		t.Fatalf("GetClientByID devolvió error: %v", err)
	}
	if updated.Phone != "+58 412 0000000" {
		t.Errorf("phone = %q, no se guardó la actualización", updated.Phone)
	}
}

func TestDeleteClientConservaTransacciones(t *testing.T) {
	db := setupDB(t)
	clientRepo := NewClientRepository(db)
	txRepo := NewTransactionRepository(db)
	userID := "user-delete"

	client := &models.Client{UserID: userID, Name: "Efímero"}
	if err := clientRepo.CreateClient(client); err != nil {
		t.Fatalf("CreateClient devolvió error: %v", err)
	}

	tx := &models.Transaction{
		UserID:          userID,
		ClientID:        client.ID,
		TransactionType: models.TransactionTypeCompra,
		Usdt:            100,
		Usd:             97,
		Fee:             0.3,
		Platform:        "Binance",
		PaymentMethod:   "Zelle",
		Date:            time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := txRepo.CreateTransaction(tx); err != nil {
		t.Fatalf("CreateTransaction devolvió error: %v", err)
	}

	if err := clientRepo.DeleteClient(userID, client.ID); err != nil {
		t.Fatalf("DeleteClient devolvió error: %v", err)
	}
	if _, err := clientRepo.GetClientByID(userID, client.ID); !errors.Is(err, ErrClienteNoEncontrado) {
		t.Errorf("el cliente borrado sigue existiendo: %v", err)
	}

	// Las transacciones sobreviven al cliente
	transactions, err := txRepo.GetUserTransactions(userID)
	if err != nil {
		t.Fatalf("GetUserTransactions devolvió error: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("len(transactions) = %d, esperado 1", len(transactions))
	}
	if transactions[0].ClientID != client.ID {
		t.Errorf("client_id = %q, esperado %q", transactions[0].ClientID, client.ID)
	}
}

func TestDeleteClientInexistente(t *testing.T) {
	repo := NewClientRepository(setupDB(t))

	if err := repo.DeleteClient("user-nada", "no-existe"); !errors.Is(err, ErrClienteNoEncontrado) {
		t.Errorf("error = %v, esperado ErrClienteNoEncontrado", err)
	}
}
