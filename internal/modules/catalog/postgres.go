package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, image_url FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanCategory(scan func(...interface{}) error) (*Category, error) {
	c := &Category{}
	var description sql.NullString
	if err := scan(&c.ID, &c.Name, &description, &c.ImageURL); err != nil {
		return nil, err
	}
	c.Description = description.String
	return c, nil
}

func (r *postgresRepo) GetCategory(ctx context.Context, id int64) (*Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, image_url FROM categories WHERE id=$1`, id)
	return scanCategory(row.Scan)
}

func (r *postgresRepo) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, image_url)
		VALUES ($1,$2,$3) RETURNING id`,
		c.Name, c.Description, c.ImageURL).Scan(&c.ID)
}

func (r *postgresRepo) UpdateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name=$1, description=$2, image_url=$3 WHERE id=$4`,
		c.Name, c.Description, c.ImageURL, c.ID)
	return err
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}

const productColumns = `p.id, p.name, p.description, p.price, p.sale_price, p.image_url,
	p.images, p.stock, p.featured, p.category_id, p.sizes, p.colors,
	p.created_at, p.updated_at, c.id, c.name, c.description, c.image_url`

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	c := &Category{}
	var (
		pDesc, cDesc sql.NullString
		salePrice    sql.NullFloat64
		images       []byte
		sizes        []byte
		colors       []byte
	)
	err := scan(&p.ID, &p.Name, &pDesc, &p.Price, &salePrice, &p.ImageURL,
		&images, &p.Stock, &p.Featured, &p.CategoryID, &sizes, &colors,
		&p.CreatedAt, &p.UpdatedAt, &c.ID, &c.Name, &cDesc, &c.ImageURL)
	if err != nil {
		return nil, err
	}
	p.Description = pDesc.String
	if salePrice.Valid {
		p.SalePrice = &salePrice.Float64
	}
	p.Images = images
	p.Sizes = sizes
	p.Colors = colors
	c.Description = cDesc.String
	p.Category = c
	return p, nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products p JOIN categories c ON c.id = p.category_id WHERE 1=1`
	args := []interface{}{}
	n := 1
	if filter.CategoryID != 0 {
		query += fmt.Sprintf(` AND p.category_id=$%d`, n)
		args = append(args, filter.CategoryID)
		n++
	}
	if filter.Featured {
		query += ` AND p.featured=true`
	}
	if filter.Search != "" {
		query += fmt.Sprintf(` AND (p.name ILIKE $%d OR p.description ILIKE $%d)`, n, n)
		args = append(args, "%"+filter.Search+"%")
		n++
	}
	query += ` ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetProduct(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`
		FROM products p JOIN categories c ON c.id = p.category_id WHERE p.id=$1`, id)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products
		  (name, description, price, sale_price, image_url, images, stock, featured, category_id, sizes, colors)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id, created_at, updated_at`,
		p.Name, p.Description, p.Price, p.SalePrice, p.ImageURL,
		nullableJSON(p.Images), p.Stock, p.Featured, p.CategoryID,
		nullableJSON(p.Sizes), nullableJSON(p.Colors)).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price=$3, sale_price=$4, image_url=$5,
		    images=$6, stock=$7, featured=$8, category_id=$9, sizes=$10, colors=$11,
		    updated_at=NOW()
		WHERE id=$12`,
		p.Name, p.Description, p.Price, p.SalePrice, p.ImageURL,
		nullableJSON(p.Images), p.Stock, p.Featured, p.CategoryID,
		nullableJSON(p.Sizes), nullableJSON(p.Colors), p.ID)
	return err
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

func nullableJSON(raw []byte) interface{} {
	if raw == nil {
		return nil
	}
	return raw
}
