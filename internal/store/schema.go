package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    amount        REAL NOT NULL,
    category      TEXT NOT NULL,
    date          TEXT NOT NULL,
    kind          TEXT NOT NULL,
    is_goal_boost INTEGER NOT NULL DEFAULT 0,
    goal_id       TEXT,
    boost_amount  REAL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    type          TEXT NOT NULL,
    target_amount REAL NOT NULL,
    start_date    TEXT NOT NULL,
    duration_days INTEGER NOT NULL,
    status        TEXT NOT NULL,
    category      TEXT
);

CREATE TABLE IF NOT EXISTS app_state (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_goal ON expenses(goal_id);
CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status);
`
