package repository

import (
	"database/sql"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
)

// Variables globales para mantener instancias de los repositorios
var (
	dbInstance *sql.DB
	clientRepo *ClientRepository
	txRepo     *TransactionRepository
)

// InitRepositories inicializa los repositorios con la conexión a la base de datos
func InitRepositories(db *sql.DB) {
	dbInstance = db
	clientRepo = NewClientRepository(db)
	txRepo = NewTransactionRepository(db)
}

// CreateClient crea un cliente para el usuario
func CreateClient(client *models.Client) error {
	if clientRepo == nil {
		return ErrRepositoryNotInitialized
	}
	return clientRepo.CreateClient(client)
}

// GetClients obtiene los clientes del usuario
func GetClients(userID string) ([]models.Client, error) {
	if clientRepo == nil {
		return nil, ErrRepositoryNotInitialized
	}
	return clientRepo.GetClients(userID)
}

// GetClientByID obtiene un cliente del usuario por su ID
func GetClientByID(userID, clientID string) (*models.Client, error) {
	if clientRepo == nil {
		return nil, ErrRepositoryNotInitialized
	}
	return clientRepo.GetClientByID(userID, clientID)
}

// UpdateClient actualiza un cliente existente
func UpdateClient(client *models.Client) error {
	if clientRepo == nil {
		return ErrRepositoryNotInitialized
	}
	return clientRepo.UpdateClient(client)
}

// DeleteClient elimina un cliente; sus transacciones se conservan
func DeleteClient(userID, clientID string) error {
	if clientRepo == nil {
		return ErrRepositoryNotInitialized
	}
	return clientRepo.DeleteClient(userID, clientID)
}

// CreateTransaction crea una nueva transacción
func CreateTransaction(tx *models.Transaction) error {
	if txRepo == nil {
		return ErrRepositoryNotInitialized
	}
	return txRepo.CreateTransaction(tx)
}

// GetUserTransactions obtiene todas las transacciones del usuario
func GetUserTransactions(userID string) ([]models.Transaction, error) {
	if txRepo == nil {
		return nil, ErrRepositoryNotInitialized
	}
	return txRepo.GetUserTransactions(userID)
}

// GetTransactionsPage obtiene una página del listado de transacciones
func GetTransactionsPage(userID, clientID string, page int) ([]models.Transaction, int, error) {
	if txRepo == nil {
		return nil, 0, ErrRepositoryNotInitialized
	}
	total, err := txRepo.CountTransactions(userID, clientID)
	if err != nil {
		return nil, 0, err
	}
	transactions, err := txRepo.GetTransactionsPage(userID, clientID, page)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// GetTransactionsInRange obtiene las transacciones dentro de un rango de fechas
func GetTransactionsInRange(userID string, start, end time.Time) ([]models.Transaction, error) {
	if txRepo == nil {
		return nil, ErrRepositoryNotInitialized
	}
	return txRepo.GetTransactionsInRange(userID, start, end)
}
