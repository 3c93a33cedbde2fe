package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS session_info (
	actor TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	color       TEXT NOT NULL DEFAULT '',
	start_date  TEXT,
	end_date    TEXT,
	is_active   INTEGER NOT NULL DEFAULT 1 CHECK(is_active IN (0, 1)),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tasks (
	id              TEXT PRIMARY KEY,
	project_id      TEXT REFERENCES projects(id) ON DELETE SET NULL,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	priority        TEXT NOT NULL DEFAULT 'medium'
		CHECK(priority IN ('low', 'medium', 'high', 'critical')),
	status          TEXT NOT NULL DEFAULT 'not_started'
		CHECK(status IN ('not_started', 'in_progress', 'on_hold', 'review', 'completed')),
	start_date      TEXT,
	due_date        TEXT,
	completed_at    DATETIME,
	assigned_to     TEXT NOT NULL DEFAULT '',
	depends_on      TEXT REFERENCES tasks(id) ON DELETE SET NULL,
	estimated_hours REAL,
	actual_hours    REAL,
	position        INTEGER NOT NULL DEFAULT 0,
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS proposals (
	id                   TEXT PRIMARY KEY,
	project_id           TEXT REFERENCES projects(id) ON DELETE SET NULL,
	title                TEXT NOT NULL,
	description          TEXT NOT NULL DEFAULT '',
	client_name          TEXT NOT NULL DEFAULT '',
	client_email         TEXT NOT NULL DEFAULT '',
	value                REAL,
	stage                TEXT NOT NULL DEFAULT 'draft'
		CHECK(stage IN ('draft', 'sent_to_client', 'client_review', 'negotiation',
			'revision', 'approved', 'contract_signed')),
	probability_to_close INTEGER NOT NULL DEFAULT 50
		CHECK(probability_to_close BETWEEN 0 AND 100),
	draft_date           TEXT,
	sent_date            TEXT,
	review_date          TEXT,
	negotiation_date     TEXT,
	revision_date        TEXT,
	approval_date        TEXT,
	signed_date          TEXT,
	notes                TEXT NOT NULL DEFAULT '',
	created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tags (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	color      TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS task_tags (
	task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	tag_id  TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	PRIMARY KEY (task_id, tag_id)
);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	content    TEXT NOT NULL,
	author     TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position);
CREATE INDEX IF NOT EXISTS idx_proposals_project_id ON proposals(project_id);
CREATE INDEX IF NOT EXISTS idx_proposals_stage ON proposals(stage);
CREATE INDEX IF NOT EXISTS idx_comments_task_id ON comments(task_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS activity_log (
	id          TEXT PRIMARY KEY,
	entity_type TEXT NOT NULL,
	entity_id   TEXT NOT NULL,
	action      TEXT NOT NULL CHECK(action IN ('INSERT', 'UPDATE', 'DELETE')),
	details     TEXT,
	actor       TEXT,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_log_created ON activity_log(created_at);
CREATE INDEX IF NOT EXISTS idx_activity_log_entity ON activity_log(entity_type, entity_id);

CREATE TRIGGER IF NOT EXISTS trg_projects_insert AFTER INSERT ON projects BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'projects', NEW.id, 'INSERT',
		json_object('name', NEW.name), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_projects_update AFTER UPDATE ON projects BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'projects', NEW.id, 'UPDATE',
		json_object('name', NEW.name), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_projects_delete AFTER DELETE ON projects BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'projects', OLD.id, 'DELETE',
		json_object('name', OLD.name), (SELECT actor FROM session_info LIMIT 1));
END;

CREATE TRIGGER IF NOT EXISTS trg_tasks_insert AFTER INSERT ON tasks BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tasks', NEW.id, 'INSERT',
		json_object('title', NEW.title), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_tasks_update AFTER UPDATE ON tasks BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tasks', NEW.id, 'UPDATE',
		json_object('title', NEW.title), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_tasks_delete AFTER DELETE ON tasks BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tasks', OLD.id, 'DELETE',
		json_object('title', OLD.title), (SELECT actor FROM session_info LIMIT 1));
END;

CREATE TRIGGER IF NOT EXISTS trg_proposals_insert AFTER INSERT ON proposals BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'proposals', NEW.id, 'INSERT',
		json_object('title', NEW.title), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_proposals_update AFTER UPDATE ON proposals BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'proposals', NEW.id, 'UPDATE',
		json_object('title', NEW.title), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_proposals_delete AFTER DELETE ON proposals BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'proposals', OLD.id, 'DELETE',
		json_object('title', OLD.title), (SELECT actor FROM session_info LIMIT 1));
END;

CREATE TRIGGER IF NOT EXISTS trg_tags_insert AFTER INSERT ON tags BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tags', NEW.id, 'INSERT',
		json_object('name', NEW.name), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_tags_update AFTER UPDATE ON tags BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tags', NEW.id, 'UPDATE',
		json_object('name', NEW.name), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_tags_delete AFTER DELETE ON tags BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'tags', OLD.id, 'DELETE',
		json_object('name', OLD.name), (SELECT actor FROM session_info LIMIT 1));
END;

CREATE TRIGGER IF NOT EXISTS trg_comments_insert AFTER INSERT ON comments BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'comments', NEW.id, 'INSERT',
		json_object('task_id', NEW.task_id), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_comments_update AFTER UPDATE ON comments BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'comments', NEW.id, 'UPDATE',
		json_object('task_id', NEW.task_id), (SELECT actor FROM session_info LIMIT 1));
END;
CREATE TRIGGER IF NOT EXISTS trg_comments_delete AFTER DELETE ON comments BEGIN
	INSERT INTO activity_log (id, entity_type, entity_id, action, details, actor)
	VALUES (lower(hex(randomblob(16))), 'comments', OLD.id, 'DELETE',
		json_object('task_id', OLD.task_id), (SELECT actor FROM session_info LIMIT 1));
END;

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
