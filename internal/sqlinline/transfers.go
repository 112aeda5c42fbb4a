package sqlinline

const QInsertTransfer = `--sql 6d4b8e1a-3c72-45f9-9e8b-7a2f5c3d1e96
insert into transfers(id, batch_id, fund_id, payee, amount, reason, created_at)
values (gen_random_uuid(), $1::uuid, $2::bigint, $3::text, $4::bigint, $5::text, now());
`

const QCreditAccount = `--sql 9a5e2c7d-4b18-4f3a-8d6c-1e9b7f4a2c58
insert into accounts(address, balance, updated_at)
values ($1::text, $2::bigint, now())
on conflict (address) do update
set balance    = accounts.balance + excluded.balance,
    updated_at = now();
`
