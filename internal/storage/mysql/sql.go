package mysql

const insertDealSQL = `
INSERT INTO daily_deals
  (user_id, store_name, product_name, regular_price, sale_price, discount_amount,
   distance, sale_start_date, sale_end_date, stock_status, recommendation_point,
   image_url, is_active)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Full-record update with an explicit column list; arbitrary client-supplied
// columns are never persisted. discount_amount is written via COALESCE so the
// stored value survives unless the client explicitly sends a new one.
const updateDealSQL = `
UPDATE daily_deals SET
  user_id              = ?,
  store_name           = ?,
  product_name         = ?,
  regular_price        = ?,
  sale_price           = ?,
  discount_amount      = COALESCE(?, discount_amount),
  distance             = ?,
  sale_start_date      = ?,
  sale_end_date        = ?,
  stock_status         = ?,
  recommendation_point = ?,
  image_url            = ?,
  is_active            = ?,
  updated_at           = CURRENT_TIMESTAMP
WHERE id = ?
`

const deleteDealSQL = `DELETE FROM daily_deals WHERE id = ?`

const dealColumns = `
  id, user_id, store_name, product_name, regular_price, sale_price,
  discount_amount, distance, sale_start_date, sale_end_date, stock_status,
  recommendation_point, image_url, is_active, created_at, updated_at`

const getDealSQL = `SELECT` + dealColumns + `
FROM daily_deals
WHERE id = ?`

const listDealsSQL = `SELECT` + dealColumns + `
FROM daily_deals
ORDER BY created_at DESC, id DESC`

// Deals whose sale window contains the given date, biggest discount first.
const todayDealsSQL = `SELECT` + dealColumns + `
FROM daily_deals
WHERE user_id = ?
  AND is_active = 1
  AND sale_start_date <= ?
  AND sale_end_date >= ?
ORDER BY discount_amount DESC, id DESC`
