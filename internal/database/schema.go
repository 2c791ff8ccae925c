package database

// SetupSchema creates all storefront tables. Every statement is idempotent,
// so running setup against an existing database is safe.
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(100) NOT NULL,
		    slug VARCHAR(100) NOT NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_slug (slug)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS sketches (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    title VARCHAR(255) NOT NULL,
		    description TEXT,
		    price DECIMAL(10,2) NOT NULL,
		    category_id BIGINT NULL,
		    image_url VARCHAR(512),
		    thumbnail_url VARCHAR(512),
		    medium VARCHAR(100),
		    dimensions VARCHAR(100),
		    is_original BOOLEAN DEFAULT TRUE,
		    stock_qty INT NOT NULL DEFAULT 1,
		    is_featured BOOLEAN DEFAULT FALSE,
		    tags VARCHAR(500),
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    FOREIGN KEY (category_id) REFERENCES categories(id),
		    INDEX idx_category_id (category_id),
		    INDEX idx_is_featured (is_featured),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_number VARCHAR(20) NOT NULL,
		    customer_name VARCHAR(255) NOT NULL,
		    customer_email VARCHAR(255) NOT NULL,
		    customer_phone VARCHAR(50),
		    shipping_address TEXT NOT NULL,
		    total_amount DECIMAL(10,2) NOT NULL,
		    status VARCHAR(20) NOT NULL DEFAULT 'pending',
		    notes TEXT,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_order_number (order_number),
		    INDEX idx_status (status),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		// sketch_id carries no cascade so a sketch referenced by an order
		// line cannot be deleted out from under its historical orders
		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id BIGINT NOT NULL,
		    sketch_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    price_at_purchase DECIMAL(10,2) NOT NULL,
		    FOREIGN KEY (order_id) REFERENCES orders(id),
		    FOREIGN KEY (sketch_id) REFERENCES sketches(id),
		    INDEX idx_order_id (order_id),
		    INDEX idx_sketch_id (sketch_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS inquiries (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(255) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    message TEXT NOT NULL,
		    sketch_id BIGINT NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    FOREIGN KEY (sketch_id) REFERENCES sketches(id),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS users (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    username VARCHAR(100) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    password_hash VARCHAR(255) NOT NULL,
		    role VARCHAR(20) NOT NULL DEFAULT 'admin',
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all storefront tables
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS inquiries",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS sketches",
		"DROP TABLE IF EXISTS categories",
		"DROP TABLE IF EXISTS users",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
