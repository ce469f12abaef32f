// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSession = `SELECT credential, account_id, last_validated_at
		FROM session
		WHERE id = 1;`

	saveSession = `INSERT INTO session (id, credential, account_id, last_validated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			credential = excluded.credential,
			account_id = excluded.account_id,
			last_validated_at = excluded.last_validated_at;`

	clearSession = `DELETE FROM session WHERE id = 1;`

	getSettings = `SELECT protocol, kill_switch, auto_connect, dns, updated_at
		FROM settings
		WHERE id = 1;`

	saveSettings = `INSERT INTO settings (id, protocol, kill_switch, auto_connect, dns, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			protocol = excluded.protocol,
			kill_switch = excluded.kill_switch,
			auto_connect = excluded.auto_connect,
			dns = excluded.dns,
			updated_at = excluded.updated_at;`

	getServerCache = `SELECT payload, retrieved_at
		FROM server_cache
		WHERE id = 1;`

	saveServerCache = `INSERT INTO server_cache (id, payload, retrieved_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			payload = excluded.payload,
			retrieved_at = excluded.retrieved_at;`

	pinServer = `INSERT INTO pins (server_id, pinned_at)
		VALUES (?, ?)
		ON CONFLICT (server_id) DO NOTHING;`

	unpinServer = `DELETE FROM pins WHERE server_id = ?;`
)
