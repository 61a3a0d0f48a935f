package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/marketscout/pkg/database"
	"github.com/ghuser/marketscout/pkg/events"
	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
	domainevents "github.com/ghuser/marketscout/services/marketplaceitem/domain/events"
	"github.com/ghuser/marketscout/services/marketplaceitem/domain/models"
	"github.com/ghuser/marketscout/services/marketplaceitem/domain/repositories"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

const itemColumns = `id, external_item_id, title, platform_id, search_term,
	quantity_text, quantity_number, price_text, price_usd, product_id,
	seller_id, seller_name, seller_url, seller_location,
	item_image_url, item_url, detected_date, created_at, updated_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish lifecycle events in the same
// transaction as the row change; pass nil to disable publishing.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// FindByID retrieves an item by surrogate id. Returns ErrItemNotFound if absent.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*models.MarketplaceItem, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM marketplace_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item by id: %w", err)
	}
	return item, nil
}

// FindByExternalID retrieves an item by the id the source platform assigned.
func (r *ItemRepository) FindByExternalID(ctx context.Context, externalItemID string) (*models.MarketplaceItem, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM marketplace_items WHERE external_item_id = $1`, externalItemID)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item by external id: %w", err)
	}
	return item, nil
}

// List returns one page of the filtered collection, newest detections first.
func (r *ItemRepository) List(ctx context.Context, filter repositories.ListFilter, page repositories.Page) ([]*models.MarketplaceItem, error) {
	where, args := buildFilter(filter)
	args = append(args, page.Size, page.Offset)
	query := fmt.Sprintf(
		`SELECT %s FROM marketplace_items%s ORDER BY detected_date DESC, id DESC LIMIT $%d OFFSET $%d`,
		itemColumns, where, len(args)-1, len(args))

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return collectItems(rows)
}

// Count returns the total matching filter, using the identical predicate as List.
func (r *ItemRepository) Count(ctx context.Context, filter repositories.ListFilter) (int64, error) {
	where, args := buildFilter(filter)
	var total int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM marketplace_items`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// Insert persists a new item and publishes an ItemCreatedEvent within the same
// transaction. The row id is assigned by the database and written back onto
// the aggregate. Returns ErrDuplicateExternalID on unique constraint violations.
func (r *ItemRepository) Insert(ctx context.Context, item *models.MarketplaceItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item.MarkCreated(time.Now())

		err := tx.QueryRowContext(ctx, `
			INSERT INTO marketplace_items (
				external_item_id, title, platform_id, search_term,
				quantity_text, quantity_number, price_text, price_usd, product_id,
				seller_id, seller_name, seller_url, seller_location,
				item_image_url, item_url, detected_date, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			RETURNING id`,
			item.ExternalItemID, item.Title, item.PlatformID, item.SearchTerm,
			item.QuantityText, item.QuantityNumber, item.PriceText, item.PriceUSD, item.ProductID,
			item.SellerID, item.SellerName, item.SellerURL, item.SellerLocation,
			item.ItemImageURL, item.ItemURL, item.DetectedDate, item.CreatedAt, item.UpdatedAt,
		).Scan(&item.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return itemdomain.ErrDuplicateExternalID
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// Update replaces all columns of an existing row. Returns ErrItemNotFound when
// the id does not exist.
func (r *ItemRepository) Update(ctx context.Context, item *models.MarketplaceItem) error {
	item.MarkUpdated(time.Now())

	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE marketplace_items SET
			external_item_id = $1, title = $2, platform_id = $3, search_term = $4,
			quantity_text = $5, quantity_number = $6, price_text = $7, price_usd = $8,
			product_id = $9, seller_id = $10, seller_name = $11, seller_url = $12,
			seller_location = $13, item_image_url = $14, item_url = $15,
			detected_date = $16, updated_at = $17
		WHERE id = $18`,
		item.ExternalItemID, item.Title, item.PlatformID, item.SearchTerm,
		item.QuantityText, item.QuantityNumber, item.PriceText, item.PriceUSD,
		item.ProductID, item.SellerID, item.SellerName, item.SellerURL,
		item.SellerLocation, item.ItemImageURL, item.ItemURL,
		item.DetectedDate, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows affected: %w", err)
	}
	if affected == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item permanently and publishes an ItemDeletedEvent within
// the same transaction. Reports true iff a row existed. Deleting a missing id
// is a no-op and publishes nothing.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM marketplace_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete item rows affected: %w", err)
		}
		removed = affected > 0

		if removed && r.bus != nil {
			if err := r.publishDeleted(tx, id); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// FindBySellerID returns all items attributed to a seller, newest detections first.
func (r *ItemRepository) FindBySellerID(ctx context.Context, sellerID string) ([]*models.MarketplaceItem, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM marketplace_items
		 WHERE seller_id = $1 ORDER BY detected_date DESC, id DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("query items by seller: %w", err)
	}
	return collectItems(rows)
}

// FindByPriceRange returns items whose normalized USD price lies within the
// inclusive bounds. Rows without a normalized price are excluded.
func (r *ItemRepository) FindByPriceRange(ctx context.Context, minUSD, maxUSD *float64) ([]*models.MarketplaceItem, error) {
	conds := []string{"price_usd IS NOT NULL"}
	args := []any{}
	if minUSD != nil {
		args = append(args, *minUSD)
		conds = append(conds, fmt.Sprintf("price_usd >= $%d", len(args)))
	}
	if maxUSD != nil {
		args = append(args, *maxUSD)
		conds = append(conds, fmt.Sprintf("price_usd <= $%d", len(args)))
	}

	query := fmt.Sprintf(
		`SELECT %s FROM marketplace_items WHERE %s ORDER BY detected_date DESC, id DESC`,
		itemColumns, strings.Join(conds, " AND "))

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items by price range: %w", err)
	}
	return collectItems(rows)
}

// FindRecentlyDetected returns items observed within the last hoursAgo hours.
func (r *ItemRepository) FindRecentlyDetected(ctx context.Context, hoursAgo int) ([]*models.MarketplaceItem, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(hoursAgo) * time.Hour)
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM marketplace_items
		 WHERE detected_date >= $1 ORDER BY detected_date DESC, id DESC`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query recently detected items: %w", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.MarketplaceItem) error {
	event := domainevents.ItemCreatedEvent{
		EventID:        uuid.New(),
		Version:        1,
		ItemID:         item.ID,
		ExternalItemID: item.ExternalItemID,
		PlatformID:     item.PlatformID,
		Title:          item.Title,
		DetectedDate:   item.DetectedDate,
		OccurredAt:     item.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishDeleted(tx *sql.Tx, id int64) error {
	event := domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicItemDeleted, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// buildFilter translates a ListFilter into a WHERE clause and positional args.
// Shared by List and Count so both always evaluate the same predicate.
func buildFilter(filter repositories.ListFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.PlatformID != nil {
		args = append(args, *filter.PlatformID)
		conds = append(conds, fmt.Sprintf("platform_id = $%d", len(args)))
	}
	if filter.SearchTerm != nil {
		args = append(args, "%"+escapeLike(*filter.SearchTerm)+"%")
		conds = append(conds, fmt.Sprintf("search_term ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes ILIKE pattern metacharacters so the caller's term
// matches literally. A term like "100%" must not act as a wildcard.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one result row onto a domain MarketplaceItem. Column order
// must match itemColumns.
func scanItem(row rowScanner) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	err := row.Scan(
		&item.ID, &item.ExternalItemID, &item.Title, &item.PlatformID, &item.SearchTerm,
		&item.QuantityText, &item.QuantityNumber, &item.PriceText, &item.PriceUSD, &item.ProductID,
		&item.SellerID, &item.SellerName, &item.SellerURL, &item.SellerLocation,
		&item.ItemImageURL, &item.ItemURL, &item.DetectedDate, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.MarketplaceItem, error) {
	defer rows.Close() //nolint:errcheck

	items := []*models.MarketplaceItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
