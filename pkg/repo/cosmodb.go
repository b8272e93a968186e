package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
)

const (
	messagesContainer     = "messages"
	transactionsContainer = "transactions"
	defaultPoolSize       = 50

	// single logical partition, same role as the transaction source
	// discriminator in other importers
	documentSource = "smssync"
)

// Cosmo is the Cosmos DB flavour of the store, for deployments where
// Postgres is not available. Duplicate inserts surface as 409 conflicts
// and are treated as no-ops.
type Cosmo struct {
	cl          *azcosmos.DatabaseClient
	setupCalled bool
}

type cosmoMessage struct {
	database.Message
	DocID  string `json:"id"`
	Source string `json:"source"`
}

type cosmoTransaction struct {
	database.Transaction

	// DocID shadows the embedded record id, so the uuid travels
	// under its own key.
	DocID    string `json:"id"`
	RecordID string `json:"recordId"`
	Source   string `json:"source"`
}

func documentID(userName string, smsID int64) string {
	return fmt.Sprintf("%s_%d", userName, smsID)
}

func NewCosmo(
	cl *azcosmos.Client,
	dbName string,
) (*Cosmo, error) {
	_, err := cl.CreateDatabase(context.Background(), azcosmos.DatabaseProperties{
		ID: dbName,
	}, &azcosmos.CreateDatabaseOptions{})

	c := &Cosmo{}

	if realErr := c.ignoreConflictErr(err); realErr != nil {
		return nil, realErr
	}

	db, err := cl.NewDatabase(dbName)
	if err != nil {
		return nil, err
	}
	c.cl = db

	if err = c.setupContainers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cosmo) setupContainers() error {
	if c.setupCalled {
		return nil
	}

	for _, name := range []string{messagesContainer, transactionsContainer} {
		_, err := c.cl.CreateContainer(context.Background(), azcosmos.ContainerProperties{
			ID: name,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
				Paths: []string{"/source"},
			},
		}, &azcosmos.CreateContainerOptions{})
		if c.ignoreConflictErr(err) != nil {
			return err
		}
	}

	c.setupCalled = true

	return nil
}

func (c *Cosmo) ignoreConflictErr(err error) error {
	if err == nil {
		return nil
	}
	var azureErr *azcore.ResponseError
	if errors.As(err, &azureErr) && azureErr.StatusCode == 409 {
		return nil
	}

	return err
}

func (c *Cosmo) isConflictErr(err error) bool {
	var azureErr *azcore.ResponseError

	return errors.As(err, &azureErr) && azureErr.StatusCode == 409
}

func (c *Cosmo) getContainer(name string) (*azcosmos.ContainerClient, error) {
	if err := c.setupContainers(); err != nil {
		return nil, err
	}

	return c.cl.NewContainer(name)
}

func (c *Cosmo) AddMessages(ctx context.Context, messages []database.Message) error {
	if len(messages) == 0 {
		return nil
	}

	container, err := c.getContainer(messagesContainer)
	if err != nil {
		return err
	}

	pool := workerpool.New(defaultPoolSize)
	partitionKey := azcosmos.NewPartitionKeyString(documentSource)

	var finalErr error

	for _, msg1 := range messages {
		msgCopy := msg1

		pool.Submit(func() {
			doc := cosmoMessage{
				Message: msgCopy,
				DocID:   documentID(msgCopy.UserName, msgCopy.SmsID),
				Source:  documentSource,
			}

			bytes, msgErr := json.Marshal(doc)
			if msgErr != nil {
				finalErr = errors.Join(finalErr, msgErr)
				return
			}

			if _, createErr := container.CreateItem(ctx, partitionKey, bytes, nil); createErr != nil {
				if c.isConflictErr(createErr) { // re-synced message
					return
				}

				finalErr = errors.Join(finalErr, createErr)
			}
		})
	}

	pool.StopWait()

	return finalErr
}

func (c *Cosmo) GetPendingMessages(ctx context.Context) ([]*database.Message, error) {
	container, err := c.getContainer(messagesContainer)
	if err != nil {
		return nil, err
	}

	partitionKey := azcosmos.NewPartitionKeyString(documentSource)

	query := "SELECT * FROM c where c.isProcessed = false order by c.createdAt asc"
	pager := container.NewQueryItemsPager(query, partitionKey, nil)

	var items []*database.Message

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := cosmoMessage{}
			if err = json.Unmarshal(bytes, &item); err != nil {
				return nil, err
			}

			msg := item.Message
			items = append(items, &msg)
		}
	}

	return items, nil
}

func (c *Cosmo) InsertTransactionIfAbsent(
	ctx context.Context,
	tx *database.Transaction,
) (bool, error) {
	container, err := c.getContainer(transactionsContainer)
	if err != nil {
		return false, err
	}

	doc := cosmoTransaction{
		Transaction: *tx,
		DocID:       documentID(tx.UserName, tx.SmsID),
		RecordID:    tx.ID,
		Source:      documentSource,
	}

	bytes, err := json.Marshal(doc)
	if err != nil {
		return false, err
	}

	_, err = container.CreateItem(ctx, azcosmos.NewPartitionKeyString(documentSource), bytes, nil)
	if err != nil {
		if c.isConflictErr(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (c *Cosmo) MarkProcessed(
	ctx context.Context,
	userName string,
	smsID int64,
) error {
	container, err := c.getContainer(messagesContainer)
	if err != nil {
		return err
	}

	partitionKey := azcosmos.NewPartitionKeyString(documentSource)

	response, err := container.ReadItem(ctx, partitionKey, documentID(userName, smsID), nil)
	if err != nil {
		return err
	}

	item := cosmoMessage{}
	if err = json.Unmarshal(response.Value, &item); err != nil {
		return err
	}

	item.IsProcessed = true

	bytes, err := json.Marshal(item)
	if err != nil {
		return err
	}

	_, err = container.UpsertItem(ctx, partitionKey, bytes, nil)

	return err
}

func (c *Cosmo) GetMessages(
	ctx context.Context,
	userName string,
) ([]*database.Message, error) {
	container, err := c.getContainer(messagesContainer)
	if err != nil {
		return nil, err
	}

	pager := container.NewQueryItemsPager(
		"SELECT * FROM c where c.userName = @user order by c.createdAt desc",
		azcosmos.NewPartitionKeyString(documentSource),
		&azcosmos.QueryOptions{
			QueryParameters: []azcosmos.QueryParameter{
				{Name: "@user", Value: userName},
			},
		})

	var items []*database.Message

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := cosmoMessage{}
			if err = json.Unmarshal(bytes, &item); err != nil {
				return nil, err
			}

			msg := item.Message
			items = append(items, &msg)
		}
	}

	return items, nil
}

func (c *Cosmo) GetTransactions(
	ctx context.Context,
	userName string,
) ([]*database.Transaction, error) {
	container, err := c.getContainer(transactionsContainer)
	if err != nil {
		return nil, err
	}

	pager := container.NewQueryItemsPager(
		"SELECT * FROM c where c.userName = @user order by c.dateReceived desc",
		azcosmos.NewPartitionKeyString(documentSource),
		&azcosmos.QueryOptions{
			QueryParameters: []azcosmos.QueryParameter{
				{Name: "@user", Value: userName},
			},
		})

	var items []*database.Transaction

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := cosmoTransaction{}
			if err = json.Unmarshal(bytes, &item); err != nil {
				return nil, err
			}

			tx := item.Transaction
			tx.ID = item.RecordID
			items = append(items, &tx)
		}
	}

	return items, nil
}
