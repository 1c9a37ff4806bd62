package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Recipes Schema

CREATE TABLE IF NOT EXISTS recipes (
    recipe_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR(255) NOT NULL,
    instructions TEXT,
    source_url TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Ingredient lines are owned by their recipe and replaced wholesale with it.
CREATE TABLE IF NOT EXISTS recipe_ingredients (
    recipe_ingredient_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    recipe_id UUID NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE,
    ingredient_name VARCHAR(255) NOT NULL,
    normalized_name VARCHAR(255) NOT NULL,
    quantity DOUBLE PRECISION NOT NULL DEFAULT 1,
    unit VARCHAR(50),
    position INTEGER NOT NULL DEFAULT 0
);

-- Index for display-name resolution during shopping list generation
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_normalized_name
    ON recipe_ingredients (normalized_name);

-- Inventory Schema

-- One row per normalized name; additions with a matching name merge into
-- the existing row.
CREATE TABLE IF NOT EXISTS inventory_items (
    inventory_item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    item_name VARCHAR(255) NOT NULL,
    normalized_name VARCHAR(255) UNIQUE NOT NULL,
    quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
    unit VARCHAR(50),
    expires_on DATE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Meal Planning Schema

CREATE TABLE IF NOT EXISTS meal_plans (
    meal_plan_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    week_start DATE UNIQUE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS meal_plan_entries (
    meal_plan_entry_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    meal_plan_id UUID NOT NULL REFERENCES meal_plans(meal_plan_id) ON DELETE CASCADE,
    day VARCHAR(20) NOT NULL,
    meal VARCHAR(20) NOT NULL,
    recipe_id UUID NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE,
    servings DOUBLE PRECISION NOT NULL DEFAULT 1,
    UNIQUE (meal_plan_id, day, meal)
);
`
